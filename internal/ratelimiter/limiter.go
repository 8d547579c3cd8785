package ratelimiter

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// ProducerLimiters holds one token bucket limiter per producer name.
// Limiters are created on first use so producers added at runtime are paced
// the same way as the configured ones.
type ProducerLimiters struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*rate.Limiter
}

// New creates a ProducerLimiters granting ratePerSec tokens per second to each
// producer, with at most burst tokens saved up.
func New(ratePerSec float64, burst int) *ProducerLimiters {
	return &ProducerLimiters{
		limit:    rate.Limit(ratePerSec),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until the producer's limiter grants a token.
// Returns a non-nil error only if ctx is cancelled while waiting.
func (pl *ProducerLimiters) Wait(ctx context.Context, producer string) error {
	return pl.get(producer).Wait(ctx)
}

func (pl *ProducerLimiters) get(producer string) *rate.Limiter {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	l, ok := pl.limiters[producer]
	if !ok {
		l = rate.NewLimiter(pl.limit, pl.burst)
		pl.limiters[producer] = l
	}
	return l
}
