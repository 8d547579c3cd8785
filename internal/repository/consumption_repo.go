package repository

import (
	"context"

	"github.com/ricirt/producer-consumer/internal/domain"
)

// ConsumptionRepository is the journal of consumed items.
// The pgx implementation is in pg_consumption_repo.go; the in-memory one
// (memory_consumption_repo.go) is used when no database is configured and in tests.
type ConsumptionRepository interface {
	Record(ctx context.Context, c *domain.Consumption) error
	// List returns at most filter.Limit records, newest first.
	// A non-positive limit yields no records.
	List(ctx context.Context, filter domain.ConsumptionFilter) ([]*domain.Consumption, error)
	CountByConsumer(ctx context.Context) (map[string]int, error)
}
