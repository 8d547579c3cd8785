package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ricirt/producer-consumer/internal/domain"
	"github.com/ricirt/producer-consumer/internal/queue"
	"github.com/ricirt/producer-consumer/internal/repository"
	"github.com/ricirt/producer-consumer/internal/service"
)

func newService(capacity int) (*service.ItemService, *repository.MemoryConsumptionRepository, *queue.ItemQueue) {
	repo := repository.NewMemoryConsumptionRepository(100)
	q := queue.New(capacity)
	svc := service.NewItemService(q, repo, zap.NewNop(), nil)
	return svc, repo, q
}

func TestItemService_Submit(t *testing.T) {
	svc, _, q := newService(5)

	item, err := svc.Submit(context.Background(), domain.SubmitItemRequest{ID: "abc", Producer: "external"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != "abc" || item.Producer != "external" || item.CreatedAt.IsZero() {
		t.Fatalf("unexpected item: %+v", item)
	}
	if q.Len() != 1 {
		t.Fatal("expected item to be enqueued")
	}
}

func TestItemService_Submit_AssignsID(t *testing.T) {
	svc, _, _ := newService(5)

	item, err := svc.Submit(context.Background(), domain.SubmitItemRequest{Producer: "external"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uuid.Parse(item.ID); err != nil {
		t.Fatalf("expected a UUID id, got %q", item.ID)
	}
}

func TestItemService_Submit_Invalid(t *testing.T) {
	svc, _, q := newService(5)

	_, err := svc.Submit(context.Background(), domain.SubmitItemRequest{ID: "1"})
	if err != domain.ErrInvalidProducer {
		t.Fatalf("expected ErrInvalidProducer, got %v", err)
	}
	if q.Len() != 0 {
		t.Fatal("invalid item must not be enqueued")
	}
}

func TestItemService_Submit_QueueFull(t *testing.T) {
	svc, _, _ := newService(1)
	ctx := context.Background()
	req := domain.SubmitItemRequest{Producer: "external"}

	if _, err := svc.Submit(ctx, req); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Submit(ctx, req); err != domain.ErrQueueFull {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
}

func TestItemService_Submit_FiresHook(t *testing.T) {
	var got []string
	svc := service.NewItemService(queue.New(2), repository.NewMemoryConsumptionRepository(1), zap.NewNop(),
		func(p string) { got = append(got, p) })

	item, _ := svc.Submit(context.Background(), domain.SubmitItemRequest{Producer: "x"})
	if len(got) != 1 || got[0] != service.SubmitSource {
		t.Fatalf("expected hook for source %q, got %v", service.SubmitSource, got)
	}
	if item.Producer != "x" {
		t.Fatalf("expected the item to keep producer x, got %q", item.Producer)
	}
}

func TestItemService_Consumptions(t *testing.T) {
	svc, repo, _ := newService(5)
	ctx := context.Background()
	_ = repo.Record(ctx, &domain.Consumption{ItemID: "1", Producer: "P", Consumer: "C1"})
	_ = repo.Record(ctx, &domain.Consumption{ItemID: "2", Producer: "P", Consumer: "C2"})

	list, err := svc.Consumptions(ctx, domain.ConsumptionFilter{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 records, got %d", len(list))
	}

	if _, err := svc.Consumptions(ctx, domain.ConsumptionFilter{Limit: 0}); err != domain.ErrInvalidLimit {
		t.Fatalf("expected ErrInvalidLimit, got %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats["C1"] != 1 || stats["C2"] != 1 {
		t.Fatalf("unexpected stats: %v", stats)
	}
}

func TestItemService_QueueDepth(t *testing.T) {
	svc, _, q := newService(4)
	_ = q.Offer(domain.Item{ID: "1", Producer: "P"})

	depth, capacity := svc.QueueDepth()
	if depth != 1 || capacity != 4 {
		t.Fatalf("unexpected depth=%d capacity=%d", depth, capacity)
	}
}
