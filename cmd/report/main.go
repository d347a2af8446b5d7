package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"aipulse/internal/config"
	"aipulse/internal/pipeline"
	"aipulse/pkg/llm"
	"aipulse/pkg/messenger"
	"aipulse/pkg/research"
	"aipulse/pkg/store"

	"github.com/joho/godotenv"
)

// One-shot report run, for cron or any external scheduler.
func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	search := research.NewPerplexityClient(cfg.Research.APIKey)

	var completer pipeline.CompletionProvider
	switch cfg.Summary.Provider {
	case config.ProviderAnthropic:
		completer = llm.NewAnthropicClient(cfg.Summary.AnthropicKey)
	default:
		completer = llm.NewOpenAIClient(cfg.Summary.OpenAIKey)
	}

	documentStore := store.NewAppwriteStore(
		cfg.Appwrite.Endpoint,
		cfg.Appwrite.ProjectID,
		cfg.Appwrite.APIKey,
		cfg.Appwrite.DatabaseID,
		cfg.Appwrite.CollectionID,
	)

	publisher := messenger.NewTelegramPublisher(cfg.Telegram.BotToken, cfg.Telegram.ChannelID)

	pipe := pipeline.New(search, completer, documentStore, publisher)

	result, err := pipe.Run(context.Background())
	if err != nil {
		log.Fatalf("report run failed: %v", err)
	}

	slog.Info("report published", "document_id", result.DocumentID, "completed_at", result.CompletedAt)
}
