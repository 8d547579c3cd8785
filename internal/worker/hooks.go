package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ricirt/producer-consumer/internal/domain"
	"github.com/ricirt/producer-consumer/internal/repository"
)

// Hooks carries the callbacks injected by main.
// Using a struct keeps the pool constructor signature clean.
type Hooks struct {
	OnProduced func(producer string)
	OnConsumed func(ctx context.Context, consumer string, item domain.Item)
}

// JournalHook returns an OnConsumed callback that records every consumption.
//
// The record is written with a context detached from ctx's cancellation:
// the item has already left the queue, so a shutdown must not lose it.
func JournalHook(repo repository.ConsumptionRepository, timeout time.Duration, logger *zap.Logger) func(context.Context, string, domain.Item) {
	return func(ctx context.Context, consumerName string, item domain.Item) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		err := repo.Record(rctx, &domain.Consumption{
			ItemID:     item.ID,
			Producer:   item.Producer,
			Consumer:   consumerName,
			ProducedAt: item.CreatedAt,
			ConsumedAt: time.Now().UTC(),
		})
		if err != nil {
			logger.Error("failed to record consumption",
				zap.String("consumer", consumerName),
				zap.String("item_id", item.ID),
				zap.Error(err),
			)
		}
	}
}

// ChainConsumed runs every non-nil callback in order.
func ChainConsumed(fns ...func(context.Context, string, domain.Item)) func(context.Context, string, domain.Item) {
	return func(ctx context.Context, consumerName string, item domain.Item) {
		for _, fn := range fns {
			if fn != nil {
				fn(ctx, consumerName, item)
			}
		}
	}
}
