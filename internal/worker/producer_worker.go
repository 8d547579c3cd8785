package worker

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ricirt/producer-consumer/internal/domain"
	"github.com/ricirt/producer-consumer/internal/producer"
	"github.com/ricirt/producer-consumer/internal/ratelimiter"
)

// ProducerWorker drives one producer, paced by its token bucket.
type ProducerWorker struct {
	p       *producer.Producer
	limiter *ratelimiter.ProducerLimiters
	logger  *zap.Logger
}

func NewProducerWorker(p *producer.Producer, limiter *ratelimiter.ProducerLimiters, logger *zap.Logger) *ProducerWorker {
	return &ProducerWorker{p: p, limiter: limiter, logger: logger}
}

// Run blocks until ctx is cancelled, producing one item per granted token.
func (w *ProducerWorker) Run(ctx context.Context) {
	w.logger.Info("producer started")
	for {
		// Block here until the producer's rate limiter grants a token.
		if err := w.limiter.Wait(ctx, w.p.Name()); err != nil {
			w.logger.Info("producer stopping", zap.Error(err))
			return
		}

		if err := w.p.Produce(ctx); err != nil {
			if errors.Is(err, domain.ErrInterrupted) {
				w.logger.Info("producer stopping", zap.Error(err))
				return
			}
			w.logger.Error("produce failed", zap.Error(err))
		}
	}
}
