package research

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"aipulse/pkg/errs"
)

const perplexityBaseURL = "https://api.perplexity.ai"

const researchSystemPrompt = `Ты — исследователь новостей. Собирай только проверяемые факты: события, анонсы, цифры, даты, названия компаний. Без оценок и прогнозов.`

// PerplexityClient pulls current findings through Perplexity's
// OpenAI-compatible chat endpoint.
type PerplexityClient struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewPerplexityClient(apiKey string) *PerplexityClient {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(perplexityBaseURL),
	)
	return &PerplexityClient{
		client: &client,
		model:  "sonar",
	}
}

func (c *PerplexityClient) Name() string {
	return "Perplexity"
}

func (c *PerplexityClient) Collect(ctx context.Context, topic string) (string, error) {
	userPrompt := fmt.Sprintf(
		"Найди самые свежие новости и факты по теме: %s. Перечисли конкретные события за последние дни с датами, цифрами и источниками.",
		topic,
	)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(researchSystemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(0.2),
		MaxTokens:   openai.Int(4096),
	})

	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &errs.UpstreamError{Service: "perplexity", StatusCode: apiErr.StatusCode, Body: apiErr.Error()}
		}
		return "", fmt.Errorf("perplexity request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", &errs.MalformedResponseError{Service: "perplexity", Field: "choices"}
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", &errs.MalformedResponseError{Service: "perplexity", Field: "message.content"}
	}

	return content, nil
}
