package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"

	defaultAppwriteEndpoint = "https://cloud.appwrite.io/v1"
	defaultPort             = "8080"
)

// Config is built once at startup from environment variables and passed by
// reference into the wiring code. No other package reads the environment.
type Config struct {
	Appwrite AppwriteConfig
	Research ResearchConfig
	Summary  SummaryConfig
	Telegram TelegramConfig
	Server   ServerConfig
}

type AppwriteConfig struct {
	Endpoint     string
	ProjectID    string
	APIKey       string
	DatabaseID   string
	CollectionID string
}

type ResearchConfig struct {
	APIKey string
}

type SummaryConfig struct {
	Provider     string
	OpenAIKey    string
	AnthropicKey string
}

type TelegramConfig struct {
	BotToken  string
	ChannelID string
}

type ServerConfig struct {
	Port        string
	FrontendURL string
}

func Load() Config {
	return Config{
		Appwrite: AppwriteConfig{
			Endpoint:     getenvDefault("APPWRITE_ENDPOINT", defaultAppwriteEndpoint),
			ProjectID:    os.Getenv("APPWRITE_PROJECT_ID"),
			APIKey:       os.Getenv("APPWRITE_API_KEY"),
			DatabaseID:   os.Getenv("APPWRITE_DATABASE_ID"),
			CollectionID: os.Getenv("APPWRITE_COLLECTION_ID"),
		},
		Research: ResearchConfig{
			APIKey: os.Getenv("PERPLEXITY_API_KEY"),
		},
		Summary: SummaryConfig{
			Provider:     getenvDefault("SUMMARY_PROVIDER", ProviderOpenAI),
			OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
			AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		},
		Telegram: TelegramConfig{
			BotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
			ChannelID: os.Getenv("TELEGRAM_CHANNEL_ID"),
		},
		Server: ServerConfig{
			Port:        getenvDefault("PORT", defaultPort),
			FrontendURL: os.Getenv("FRONTEND_URL"),
		},
	}
}

// Validate reports every missing required variable at once.
func (c Config) Validate() error {
	var missing []string

	add := func(name, value string) {
		if value == "" {
			missing = append(missing, name)
		}
	}

	add("APPWRITE_PROJECT_ID", c.Appwrite.ProjectID)
	add("APPWRITE_API_KEY", c.Appwrite.APIKey)
	add("APPWRITE_DATABASE_ID", c.Appwrite.DatabaseID)
	add("APPWRITE_COLLECTION_ID", c.Appwrite.CollectionID)
	add("PERPLEXITY_API_KEY", c.Research.APIKey)
	add("TELEGRAM_BOT_TOKEN", c.Telegram.BotToken)
	add("TELEGRAM_CHANNEL_ID", c.Telegram.ChannelID)

	switch c.Summary.Provider {
	case ProviderOpenAI:
		add("OPENAI_API_KEY", c.Summary.OpenAIKey)
	case ProviderAnthropic:
		add("ANTHROPIC_API_KEY", c.Summary.AnthropicKey)
	default:
		return fmt.Errorf("unknown SUMMARY_PROVIDER %q (expected %s or %s)",
			c.Summary.Provider, ProviderOpenAI, ProviderAnthropic)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

func getenvDefault(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
