package worker

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ricirt/producer-consumer/internal/config"
	"github.com/ricirt/producer-consumer/internal/consumer"
	"github.com/ricirt/producer-consumer/internal/producer"
	"github.com/ricirt/producer-consumer/internal/queue"
	"github.com/ricirt/producer-consumer/internal/ratelimiter"
)

// Pool manages the lifecycle of all producer and consumer goroutines.
// They share one queue and coordinate only through it.
type Pool struct {
	producers []*ProducerWorker
	consumers []*ConsumerWorker
	wg        sync.WaitGroup
}

// NewPool creates cfg.Producers producers named Producer_<i> and
// cfg.Consumers consumers named Consumer_<i>.
func NewPool(
	cfg *config.Config,
	q *queue.ItemQueue,
	limiter *ratelimiter.ProducerLimiters,
	logger *zap.Logger,
	hooks Hooks,
) *Pool {
	p := &Pool{
		producers: make([]*ProducerWorker, cfg.Producers),
		consumers: make([]*ConsumerWorker, cfg.Consumers),
	}

	for i := range p.producers {
		name := fmt.Sprintf("Producer_%d", i)
		log := logger.With(zap.String("producer", name))
		p.producers[i] = NewProducerWorker(producer.New(name, q, log, hooks.OnProduced), limiter, log)
	}
	for i := range p.consumers {
		name := fmt.Sprintf("Consumer_%d", i)
		p.consumers[i] = NewConsumerWorker(
			consumer.New(name, q, logger, hooks.OnConsumed),
			logger.With(zap.String("consumer", name)),
		)
	}

	return p
}

// Start launches every worker as a goroutine.
// Cancelling ctx interrupts every blocked Put and Take.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.consumers {
		p.wg.Add(1)
		go func(w *ConsumerWorker) {
			defer p.wg.Done()
			w.Run(ctx)
		}(w)
	}
	for _, w := range p.producers {
		p.wg.Add(1)
		go func(w *ProducerWorker) {
			defer p.wg.Done()
			w.Run(ctx)
		}(w)
	}
}

// Wait blocks until every worker has returned after ctx is cancelled.
func (p *Pool) Wait() {
	p.wg.Wait()
}
