package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a sensible default. DATABASE_URL is optional: without it
// the consumption journal is kept in memory.
type Config struct {
	// Server
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Logging
	LogLevel    string
	LogEncoding string

	// Queue and workers
	QueueCapacity int
	Producers     int
	Consumers     int

	// Pacing: items per second per producer
	ProduceRate  float64
	ProduceBurst int

	// Journal
	DatabaseURL string
	DBMaxConns  int32
	DBMinConns  int32
	JournalSize int
}

func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogEncoding: getEnv("LOG_ENCODING", "json"),

		QueueCapacity: getInt("QUEUE_CAPACITY", 5),
		Producers:     getInt("PRODUCERS", 2),
		Consumers:     getInt("CONSUMERS", 3),

		ProduceRate:  getFloat("PRODUCE_RATE", 1),
		ProduceBurst: getInt("PRODUCE_BURST", 1),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBMaxConns:  int32(getInt("DB_MAX_CONNS", 10)),
		DBMinConns:  int32(getInt("DB_MIN_CONNS", 2)),
		JournalSize: getInt("JOURNAL_SIZE", 1000),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.QueueCapacity < 0:
		return fmt.Errorf("QUEUE_CAPACITY must not be negative, got %d", c.QueueCapacity)
	case c.Producers < 0:
		return fmt.Errorf("PRODUCERS must not be negative, got %d", c.Producers)
	case c.Consumers < 1:
		return fmt.Errorf("CONSUMERS must be at least 1, got %d", c.Consumers)
	case c.ProduceRate <= 0:
		return fmt.Errorf("PRODUCE_RATE must be positive, got %v", c.ProduceRate)
	case c.ProduceBurst < 1:
		return fmt.Errorf("PRODUCE_BURST must be at least 1, got %d", c.ProduceBurst)
	case c.JournalSize < 1:
		return fmt.Errorf("JOURNAL_SIZE must be at least 1, got %d", c.JournalSize)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
