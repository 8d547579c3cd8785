package consumer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ricirt/producer-consumer/internal/domain"
)

// Taker is the blocking removal side of the shared item queue.
// queue.ItemQueue satisfies it.
type Taker interface {
	Take(ctx context.Context) (domain.Item, error)
}

// Consumer is one named worker attached to a shared queue.
// It does not own the queue and keeps no state between calls.
type Consumer struct {
	name   string
	q      Taker
	logger *zap.Logger

	// Hook for metrics and the journal, injected by the pool.
	onConsumed func(ctx context.Context, consumer string, item domain.Item)
}

// New constructs a consumer. onConsumed is optional (nil = no-op).
func New(
	name string,
	q Taker,
	logger *zap.Logger,
	onConsumed func(context.Context, string, domain.Item),
) *Consumer {
	if onConsumed == nil {
		onConsumed = func(context.Context, string, domain.Item) {}
	}
	return &Consumer{name: name, q: q, logger: logger, onConsumed: onConsumed}
}

func (c *Consumer) Name() string { return c.name }

// Consume blocks until an item is available, removes exactly one and logs it.
//
// If ctx is cancelled before an item is taken, the error from the queue
// (wrapping domain.ErrInterrupted) is returned as-is and nothing is logged.
func (c *Consumer) Consume(ctx context.Context) error {
	item, err := c.q.Take(ctx)
	if err != nil {
		return err
	}

	c.logger.Info(
		fmt.Sprintf("Consumer [%s] consume item[%s] produced by[%s]", c.name, item.ID, item.Producer),
		zap.String("consumer", c.name),
		zap.String("item_id", item.ID),
		zap.String("producer", item.Producer),
	)
	c.onConsumed(ctx, c.name, item)
	return nil
}
