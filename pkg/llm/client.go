package llm

import "context"

// SummaryClient condenses raw findings into a channel-ready Russian summary.
type SummaryClient interface {
	Summarize(ctx context.Context, findings string) (string, error)
}
