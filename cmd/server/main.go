package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vango-go/vango"

	"care_chat/app/routes"
	"care_chat/internal/ai"
	"care_chat/internal/config"
	"care_chat/internal/profile"
	"care_chat/internal/services/assistant"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	generator, err := newGenerator(cfg)
	if err != nil {
		slog.Error("failed to build model provider", "provider", cfg.Provider, "error", err)
		os.Exit(1)
	}
	assistantService := assistant.NewService(generator)

	app, err := vango.New(vango.Config{
		Session: vango.SessionConfig{
			ResumeWindow: vango.ResumeWindow(30 * time.Second),
		},
		Static: vango.StaticConfig{
			Dir:    "public",
			Prefix: "/",
		},
		DevMode: cfg.DevMode,
	})
	if err != nil {
		slog.Error("failed to create app", "error", err)
		os.Exit(1)
	}

	routes.SetDeps(routes.Deps{
		Assistant: assistantService,
		Profile: profile.Profile{
			Name:            cfg.ProfileName,
			InteractionMode: cfg.InteractionMode,
			Framework:       cfg.Framework,
			Domains:         cfg.Domains,
			Language:        cfg.Language,
		},
	})
	routes.Register(app)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.Port
	slog.Info("starting server", "addr", addr, "provider", cfg.Provider, "model", cfg.Model)
	if err := app.Run(ctx, addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// newGenerator picks the model provider. A missing credential is not a
// startup failure; it surfaces as a call failure at send time.
func newGenerator(cfg config.Config) (ai.Generator, error) {
	switch cfg.Provider {
	case "openai":
		return ai.NewOpenAIGenerator(ai.OpenAIConfig{
			APIKey:       cfg.OpenAIKey,
			BaseURL:      cfg.OpenAIBase,
			Model:        cfg.Model,
			ReplyTimeout: cfg.ReplyTimeout,
		}), nil
	default:
		return ai.NewVaiGenerator(ai.VaiConfig{
			Model:        cfg.Model,
			ReplyTimeout: cfg.ReplyTimeout,
		})
	}
}
