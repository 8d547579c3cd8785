package producer

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/ricirt/producer-consumer/internal/domain"
)

// Putter is the blocking insertion side of the shared item queue.
type Putter interface {
	Put(ctx context.Context, item domain.Item) error
}

// Producer creates items labelled with its name and a per-producer sequence
// number starting at 0, and puts them on the shared queue.
type Producer struct {
	name   string
	q      Putter
	logger *zap.Logger
	next   atomic.Int64

	onProduced func(producer string)
}

// New constructs a producer. onProduced is optional (nil = no-op).
func New(name string, q Putter, logger *zap.Logger, onProduced func(string)) *Producer {
	if onProduced == nil {
		onProduced = func(string) {}
	}
	return &Producer{name: name, q: q, logger: logger, onProduced: onProduced}
}

func (p *Producer) Name() string { return p.name }

// Produce puts one new item on the queue, blocking while the queue is full.
// A sequence number is spent even if the put is interrupted.
func (p *Producer) Produce(ctx context.Context) error {
	item := domain.Item{
		ID:        strconv.FormatInt(p.next.Add(1)-1, 10),
		Producer:  p.name,
		CreatedAt: time.Now().UTC(),
	}
	if err := p.q.Put(ctx, item); err != nil {
		return err
	}

	p.logger.Debug("item produced", zap.String("producer", p.name), zap.String("item_id", item.ID))
	p.onProduced(p.name)
	return nil
}
