package config_test

import (
	"testing"
	"time"

	"github.com/ricirt/producer-consumer/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.HTTPPort)
	}
	if cfg.QueueCapacity != 5 || cfg.Producers != 2 || cfg.Consumers != 3 {
		t.Fatalf("unexpected worker defaults: %+v", cfg)
	}
	if cfg.ProduceRate != 1 || cfg.ProduceBurst != 1 {
		t.Fatalf("unexpected pacing defaults: rate=%v burst=%d", cfg.ProduceRate, cfg.ProduceBurst)
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("expected no database by default, got %q", cfg.DatabaseURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("QUEUE_CAPACITY", "50")
	t.Setenv("CONSUMERS", "7")
	t.Setenv("PRODUCE_RATE", "2.5")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.QueueCapacity != 50 || cfg.Consumers != 7 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.ProduceRate != 2.5 {
		t.Fatalf("expected rate 2.5, got %v", cfg.ProduceRate)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("expected 3s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.DatabaseURL == "" {
		t.Fatal("expected DATABASE_URL to be read")
	}
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("QUEUE_CAPACITY", "lots")
	t.Setenv("READ_TIMEOUT", "soon")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.QueueCapacity != 5 || cfg.ReadTimeout != 5*time.Second {
		t.Fatalf("expected defaults, got capacity=%d read=%v", cfg.QueueCapacity, cfg.ReadTimeout)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"no consumers", "CONSUMERS", "0"},
		{"negative producers", "PRODUCERS", "-1"},
		{"negative capacity", "QUEUE_CAPACITY", "-2"},
		{"zero rate", "PRODUCE_RATE", "0"},
		{"zero burst", "PRODUCE_BURST", "0"},
		{"zero journal", "JOURNAL_SIZE", "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := config.Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.value)
			}
		})
	}
}
