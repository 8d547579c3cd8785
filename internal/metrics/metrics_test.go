package metrics_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ricirt/producer-consumer/internal/domain"
	"github.com/ricirt/producer-consumer/internal/metrics"
)

func TestMetrics_WorkerHooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg, func() int { return 0 })
	onProduced, onConsumed := m.WorkerHooks()

	onProduced("Producer_0")
	onProduced("Producer_0")
	onConsumed(context.Background(), "Consumer_1", domain.Item{ID: "0", Producer: "Producer_0", CreatedAt: time.Now()})

	if got := testutil.ToFloat64(m.ItemsProduced.WithLabelValues("Producer_0")); got != 2 {
		t.Fatalf("expected 2 produced, got %v", got)
	}
	if got := testutil.ToFloat64(m.ItemsConsumed.WithLabelValues("Consumer_1")); got != 1 {
		t.Fatalf("expected 1 consumed, got %v", got)
	}
	if n := testutil.CollectAndCount(m.TimeInQueue); n != 1 {
		t.Fatalf("expected one histogram series, got %d", n)
	}
}

func TestMetrics_QueueDepthGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	depth := 3
	metrics.New(reg, func() int { return depth })

	expected := `
# HELP queue_depth Current number of items waiting in the queue.
# TYPE queue_depth gauge
queue_depth 3
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "queue_depth"); err != nil {
		t.Fatal(err)
	}
}
