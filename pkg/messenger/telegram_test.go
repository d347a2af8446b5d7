package messenger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"aipulse/pkg/errs"
)

func newTestPublisher(baseURL string) *TelegramPublisher {
	return &TelegramPublisher{
		botToken:   "test-token",
		channelID:  "@testchannel",
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestPublishSendsMessage(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":{"message_id":42}}`))
	}))
	defer srv.Close()

	p := newTestPublisher(srv.URL)

	err := p.Publish(context.Background(), "<b>Дайджест</b>")

	assert.Equal(t, nil, err)
	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "@testchannel", gotBody.ChatID)
	assert.Equal(t, "<b>Дайджест</b>", gotBody.Text)
	assert.Equal(t, "HTML", gotBody.ParseMode)
	assert.Equal(t, true, gotBody.DisableWebPagePreview)
}

func TestPublishNonSuccessCarriesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: message is too long"}`))
	}))
	defer srv.Close()

	p := newTestPublisher(srv.URL)

	err := p.Publish(context.Background(), strings.Repeat("x", 5000))

	var upstream *errs.UpstreamError
	assert.Equal(t, true, errors.As(err, &upstream))
	assert.Equal(t, http.StatusBadRequest, upstream.StatusCode)
	assert.Equal(t, true, strings.Contains(upstream.Body, "message is too long"))
}

func TestPublishTransportError(t *testing.T) {
	p := newTestPublisher("http://127.0.0.1:1")

	err := p.Publish(context.Background(), "report")

	assert.NotEqual(t, nil, err)

	var upstream *errs.UpstreamError
	assert.Equal(t, false, errors.As(err, &upstream))
}
