package queue

import (
	"context"
	"fmt"

	"github.com/ricirt/producer-consumer/internal/domain"
)

// ItemQueue is a bounded blocking FIFO shared by every producer and consumer.
//
// It is a thin wrapper over a buffered channel: the channel receive is what
// guarantees each item reaches exactly one consumer, and the buffer size is
// the backpressure point for producers. A capacity of 0 turns every Put into
// a synchronous hand-off to a waiting Take.
type ItemQueue struct {
	items chan domain.Item
}

func New(capacity int) *ItemQueue {
	if capacity < 0 {
		capacity = 0
	}
	return &ItemQueue{items: make(chan domain.Item, capacity)}
}

// Put blocks until there is room for item or ctx is cancelled.
func (q *ItemQueue) Put(ctx context.Context, item domain.Item) error {
	if ctx.Err() != nil {
		return interrupted(ctx)
	}
	select {
	case q.items <- item:
		return nil
	case <-ctx.Done():
		return interrupted(ctx)
	}
}

// Offer places item on the queue without blocking.
// If the queue is full, ErrQueueFull is returned immediately rather than
// blocking the caller (the HTTP handler).
func (q *ItemQueue) Offer(item domain.Item) error {
	select {
	case q.items <- item:
		return nil
	default:
		return domain.ErrQueueFull
	}
}

// Take blocks until an item is available or ctx is cancelled, and removes it.
//
// ctx is checked before waiting: select picks randomly among ready cases, so
// without the check an already-cancelled caller could still remove an item.
func (q *ItemQueue) Take(ctx context.Context) (domain.Item, error) {
	if ctx.Err() != nil {
		return domain.Item{}, interrupted(ctx)
	}
	select {
	case item := <-q.items:
		return item, nil
	case <-ctx.Done():
		return domain.Item{}, interrupted(ctx)
	}
}

// Len returns the number of items currently waiting.
func (q *ItemQueue) Len() int { return len(q.items) }

// Cap returns the configured capacity.
func (q *ItemQueue) Cap() int { return cap(q.items) }

func interrupted(ctx context.Context) error {
	return fmt.Errorf("%w: %w", domain.ErrInterrupted, context.Cause(ctx))
}
