package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultModel    = "anthropic/claude-haiku-4-5"
	DefaultProvider = "vai"
)

type Config struct {
	Port         string
	DevMode      bool
	Provider     string
	Model        string
	OpenAIKey    string
	OpenAIBase   string
	ReplyTimeout time.Duration

	// Defaults for the inbound user profile; a host page may override
	// these per mount.
	ProfileName     string
	InteractionMode string
	Framework       string
	Domains         []string
	Language        string
}

func Load() Config {
	cfg := Config{
		Port:         getenv("PORT", "3000"),
		DevMode:      os.Getenv("VANGO_DEV") == "1",
		Provider:     getenv("AI_PROVIDER", DefaultProvider),
		Model:        getenv("AI_MODEL", DefaultModel),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBase:   getenv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		ReplyTimeout: time.Duration(getenvInt("AI_REPLY_TIMEOUT_SECONDS", 60)) * time.Second,

		ProfileName:     getenv("ASSISTANT_USER_NAME", "there"),
		InteractionMode: getenv("ASSISTANT_INTERACTION_MODE", "patient"),
		Framework:       getenv("ASSISTANT_FRAMEWORK", "conventional"),
		Domains:         getenvList("ASSISTANT_DOMAINS", []string{"general health"}),
		Language:        getenv("ASSISTANT_LANGUAGE", "en"),
	}

	if cfg.ReplyTimeout <= 0 {
		cfg.ReplyTimeout = 60 * time.Second
	}

	return cfg
}

func getenv(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func getenvInt(name string, fallback int) int {
	value := os.Getenv(name)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvList(name string, fallback []string) []string {
	value := os.Getenv(name)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
