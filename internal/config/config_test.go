package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{"AI_PROVIDER", "AI_MODEL", "AI_REPLY_TIMEOUT_SECONDS", "ASSISTANT_DOMAINS"} {
		t.Setenv(name, "")
	}

	cfg := Load()

	if cfg.Provider != DefaultProvider {
		t.Fatalf("cfg.Provider = %q, want %q", cfg.Provider, DefaultProvider)
	}
	if cfg.Model != DefaultModel {
		t.Fatalf("cfg.Model = %q, want %q", cfg.Model, DefaultModel)
	}
	if cfg.ReplyTimeout != 60*time.Second {
		t.Fatalf("cfg.ReplyTimeout = %v, want 60s", cfg.ReplyTimeout)
	}
	if len(cfg.Domains) == 0 {
		t.Fatalf("cfg.Domains is empty, want at least one default domain")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AI_PROVIDER", "openai")
	t.Setenv("AI_MODEL", "gpt-4o-mini")
	t.Setenv("AI_REPLY_TIMEOUT_SECONDS", "15")
	t.Setenv("ASSISTANT_DOMAINS", "cardiology, nutrition ,")

	cfg := Load()

	if cfg.Provider != "openai" {
		t.Fatalf("cfg.Provider = %q, want %q", cfg.Provider, "openai")
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Fatalf("cfg.Model = %q, want %q", cfg.Model, "gpt-4o-mini")
	}
	if cfg.ReplyTimeout != 15*time.Second {
		t.Fatalf("cfg.ReplyTimeout = %v, want 15s", cfg.ReplyTimeout)
	}
	if len(cfg.Domains) != 2 || cfg.Domains[0] != "cardiology" || cfg.Domains[1] != "nutrition" {
		t.Fatalf("cfg.Domains = %v, want [cardiology nutrition]", cfg.Domains)
	}
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("AI_REPLY_TIMEOUT_SECONDS", "soon")

	cfg := Load()

	if cfg.ReplyTimeout != 60*time.Second {
		t.Fatalf("cfg.ReplyTimeout = %v, want 60s fallback", cfg.ReplyTimeout)
	}
}
