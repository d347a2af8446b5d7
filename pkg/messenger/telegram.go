package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"aipulse/pkg/errs"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramPublisher posts a report to a channel via the bot API. Messages over
// Telegram's size limit are rejected by the API; no splitting is attempted.
type TelegramPublisher struct {
	botToken   string
	channelID  string
	baseURL    string
	httpClient *http.Client
}

func NewTelegramPublisher(botToken, channelID string) *TelegramPublisher {
	return &TelegramPublisher{
		botToken:   botToken,
		channelID:  channelID,
		baseURL:    telegramAPIBase,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *TelegramPublisher) Publish(ctx context.Context, report string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:                p.channelID,
		Text:                  report,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("marshal telegram payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", p.baseURL, p.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &errs.UpstreamError{
			Service:    "telegram",
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(payload)),
		}
	}

	return nil
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}
