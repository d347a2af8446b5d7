package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"aipulse/internal/model"
	"aipulse/pkg/errs"
)

// SearchProvider retrieves current raw findings on a topic.
type SearchProvider interface {
	Collect(ctx context.Context, topic string) (string, error)
}

// CompletionProvider condenses raw findings into a channel-ready summary.
type CompletionProvider interface {
	Summarize(ctx context.Context, findings string) (string, error)
}

// DocumentStore persists one report record per run.
type DocumentStore interface {
	CreateReport(ctx context.Context, record model.ReportRecord) (string, error)
}

// MessagePublisher delivers the final report to the channel.
type MessagePublisher interface {
	Publish(ctx context.Context, report string) error
}

type Result struct {
	DocumentID  string
	CompletedAt time.Time
}

// Pipeline runs collect, summarize, format, persist and publish in order.
// The first failing stage aborts the run; nothing is retried.
type Pipeline struct {
	search    SearchProvider
	completer CompletionProvider
	store     DocumentStore
	publisher MessagePublisher
	now       func() time.Time
}

func New(search SearchProvider, completer CompletionProvider, store DocumentStore, publisher MessagePublisher) *Pipeline {
	return &Pipeline{
		search:    search,
		completer: completer,
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}
}

func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	slog.Info("collecting findings", "topic", model.Topic)
	findings, err := p.search.Collect(ctx, model.Topic)
	if err != nil {
		return nil, fmt.Errorf("collect findings: %w", err)
	}

	slog.Info("summarizing findings", "findings_chars", len([]rune(findings)))
	summary, err := p.completer.Summarize(ctx, findings)
	if err != nil {
		return nil, fmt.Errorf("summarize findings: %w", err)
	}

	createdAt := p.now()
	report := BuildReport(summary, createdAt)

	record := model.ReportRecord{
		Topic:       model.Topic,
		RawData:     model.Truncate(findings, model.MaxRawDataLen),
		Analysis:    model.Truncate(summary, model.MaxAnalysisLen),
		FinalReport: report,
		CreatedAt:   createdAt,
		Status:      model.StatusPublished,
	}

	slog.Info("persisting report record")
	documentID, err := p.store.CreateReport(ctx, record)
	if err != nil {
		return nil, &errs.StorageError{Err: err}
	}

	slog.Info("publishing report", "document_id", documentID)
	if err := p.publisher.Publish(ctx, report); err != nil {
		return nil, fmt.Errorf("publish report: %w", err)
	}

	result := &Result{DocumentID: documentID, CompletedAt: p.now()}
	slog.Info("report run finished", "document_id", documentID)
	return result, nil
}
