package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger from a level name ("debug", "info", ...)
// and an encoding ("json" or "console").
func New(level, encoding string) (*zap.Logger, error) {
	parsedLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.EncoderConfig.CallerKey = zapcore.OmitKey
	zcfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.DateTime)
	zcfg.OutputPaths = []string{"stdout"}
	zcfg.Encoding = encoding
	zcfg.Level = zap.NewAtomicLevelAt(parsedLevel)

	return zcfg.Build()
}
