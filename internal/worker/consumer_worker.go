package worker

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ricirt/producer-consumer/internal/consumer"
	"github.com/ricirt/producer-consumer/internal/domain"
)

// ConsumerWorker drives one consumer: it calls Consume in a loop until the
// consumer reports an interruption.
type ConsumerWorker struct {
	c      *consumer.Consumer
	logger *zap.Logger
}

func NewConsumerWorker(c *consumer.Consumer, logger *zap.Logger) *ConsumerWorker {
	return &ConsumerWorker{c: c, logger: logger}
}

// Run blocks until ctx is cancelled, consuming one item per iteration.
func (w *ConsumerWorker) Run(ctx context.Context) {
	w.logger.Info("consumer started")
	for {
		err := w.c.Consume(ctx)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrInterrupted):
			w.logger.Info("consumer stopping", zap.Error(err))
			return
		default:
			w.logger.Error("consume failed", zap.Error(err))
		}
	}
}
