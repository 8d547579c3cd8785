package logger_test

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/ricirt/producer-consumer/internal/logger"
)

func TestNew(t *testing.T) {
	l, err := logger.New("debug", "console")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("expected debug level to be enabled")
	}

	l, err = logger.New("warn", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("expected info level to be disabled at warn")
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := logger.New("loud", "json"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNew_BadEncoding(t *testing.T) {
	if _, err := logger.New("info", "xml"); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}
