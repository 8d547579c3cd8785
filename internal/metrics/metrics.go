package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ricirt/producer-consumer/internal/domain"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	ItemsProduced *prometheus.CounterVec
	ItemsConsumed *prometheus.CounterVec
	TimeInQueue   prometheus.Histogram
}

// DepthFunc reports the current queue length; queue.ItemQueue.Len fits.
type DepthFunc func() int

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
func New(reg prometheus.Registerer, depth DepthFunc) *Metrics {
	m := &Metrics{
		ItemsProduced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "items_produced_total",
			Help: "Total number of items put on the queue, by producer.",
		}, []string{"producer"}),

		ItemsConsumed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "items_consumed_total",
			Help: "Total number of items taken from the queue, by consumer.",
		}, []string{"consumer"}),

		TimeInQueue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "item_queue_wait_seconds",
			Help:    "Time between an item's creation and its consumption.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		m.ItemsProduced,
		m.ItemsConsumed,
		m.TimeInQueue,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "queue_depth",
			Help: "Current number of items waiting in the queue.",
		}, func() float64 { return float64(depth()) }),
	)

	return m
}

// WorkerHooks returns the metric callbacks expected by worker.Hooks.
func (m *Metrics) WorkerHooks() (
	onProduced func(producer string),
	onConsumed func(ctx context.Context, consumer string, item domain.Item),
) {
	onProduced = func(producer string) {
		m.ItemsProduced.WithLabelValues(producer).Inc()
	}
	onConsumed = func(_ context.Context, consumer string, item domain.Item) {
		m.ItemsConsumed.WithLabelValues(consumer).Inc()
		if !item.CreatedAt.IsZero() {
			m.TimeInQueue.Observe(time.Since(item.CreatedAt).Seconds())
		}
	}
	return
}
