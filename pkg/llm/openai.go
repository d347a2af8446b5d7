package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"aipulse/pkg/errs"
)

type OpenAIClient struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client: &client,
		model:  openai.ChatModelGPT4oMini,
	}
}

func (c *OpenAIClient) Summarize(ctx context.Context, findings string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(summarySystemPrompt),
			openai.UserMessage(buildUserPrompt(findings)),
		},
		Temperature: openai.Float(0.4),
		MaxTokens:   openai.Int(2048),
	})

	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &errs.UpstreamError{Service: "openai", StatusCode: apiErr.StatusCode, Body: apiErr.Error()}
		}
		return "", fmt.Errorf("openai request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", &errs.MalformedResponseError{Service: "openai", Field: "choices"}
	}

	content := trimCodeFence(resp.Choices[0].Message.Content)
	if content == "" {
		return "", &errs.MalformedResponseError{Service: "openai", Field: "message.content"}
	}

	return content, nil
}
