package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ricirt/producer-consumer/internal/domain"
	"github.com/ricirt/producer-consumer/internal/queue"
	"github.com/ricirt/producer-consumer/internal/repository"
)

// SubmitSource is the producer label HTTP submissions are counted under.
// The caller's producer name stays on the item and in the journal only, so
// clients cannot mint new metric series.
const SubmitSource = "http"

// ItemService backs the HTTP API: it lets external producers submit items
// and exposes the queue depth and the consumption journal.
type ItemService struct {
	q          *queue.ItemQueue
	repo       repository.ConsumptionRepository
	logger     *zap.Logger
	onProduced func(producer string)
}

// NewItemService constructs the service. onProduced is optional (nil = no-op).
func NewItemService(
	q *queue.ItemQueue,
	repo repository.ConsumptionRepository,
	logger *zap.Logger,
	onProduced func(string),
) *ItemService {
	if onProduced == nil {
		onProduced = func(string) {}
	}
	return &ItemService{q: q, repo: repo, logger: logger, onProduced: onProduced}
}

// Submit validates req and offers the item to the queue without blocking.
// An empty ID is replaced with a random UUID.
func (s *ItemService) Submit(_ context.Context, req domain.SubmitItemRequest) (*domain.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item := domain.Item{
		ID:        req.ID,
		Producer:  req.Producer,
		CreatedAt: time.Now().UTC(),
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	if err := s.q.Offer(item); err != nil {
		s.logger.Warn("item rejected", zap.String("producer", item.Producer), zap.Error(err))
		return nil, err
	}

	s.onProduced(SubmitSource)
	s.logger.Debug("item submitted", zap.String("producer", item.Producer), zap.String("item_id", item.ID))
	return &item, nil
}

func (s *ItemService) Consumptions(ctx context.Context, filter domain.ConsumptionFilter) ([]*domain.Consumption, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

func (s *ItemService) Stats(ctx context.Context) (map[string]int, error) {
	return s.repo.CountByConsumer(ctx)
}

func (s *ItemService) QueueDepth() (depth, capacity int) {
	return s.q.Len(), s.q.Cap()
}
