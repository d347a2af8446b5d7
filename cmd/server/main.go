package main

import (
	"log"
	"log/slog"
	"os"

	"aipulse/internal/config"
	"aipulse/internal/handler"
	"aipulse/internal/pipeline"
	"aipulse/pkg/llm"
	"aipulse/pkg/messenger"
	"aipulse/pkg/research"
	"aipulse/pkg/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

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
	reportHandler := handler.NewReportHandler(pipe)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.Server.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.Server.FrontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/reports/run", reportHandler.RunReport)
	r.GET("/health", reportHandler.GetHealth)

	slog.Info("starting server", "port", cfg.Server.Port, "summary_provider", cfg.Summary.Provider)

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
