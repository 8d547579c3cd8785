package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ricirt/producer-consumer/internal/domain"
)

// PgConsumptionRepository stores the journal in the consumptions table.
type PgConsumptionRepository struct {
	pool *pgxpool.Pool
}

func NewPgConsumptionRepository(pool *pgxpool.Pool) *PgConsumptionRepository {
	return &PgConsumptionRepository{pool: pool}
}

func (r *PgConsumptionRepository) Record(ctx context.Context, c *domain.Consumption) error {
	const q = `
		INSERT INTO consumptions (item_id, producer, consumer, produced_at, consumed_at)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.pool.Exec(ctx, q, c.ItemID, c.Producer, c.Consumer, c.ProducedAt, c.ConsumedAt); err != nil {
		return fmt.Errorf("insert consumption: %w", err)
	}
	return nil
}

func (r *PgConsumptionRepository) List(ctx context.Context, filter domain.ConsumptionFilter) ([]*domain.Consumption, error) {
	q, args := listConsumptionsQuery(filter)
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query consumptions: %w", err)
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Consumption, error) {
		var c domain.Consumption
		if err := row.Scan(&c.ItemID, &c.Producer, &c.Consumer, &c.ProducedAt, &c.ConsumedAt); err != nil {
			return nil, err
		}
		return &c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan consumptions: %w", err)
	}
	return result, nil
}

// listConsumptionsQuery builds the journal listing query; a non-positive
// limit is clamped to 0 like the in-memory journal.
func listConsumptionsQuery(filter domain.ConsumptionFilter) (string, []any) {
	q := `
		SELECT item_id, producer, consumer, produced_at, consumed_at
		FROM consumptions`
	args := []any{}
	if filter.Consumer != nil {
		args = append(args, *filter.Consumer)
		q += fmt.Sprintf(" WHERE consumer = $%d", len(args))
	}
	args = append(args, max(filter.Limit, 0))
	q += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d", len(args))
	return q, args
}

func (r *PgConsumptionRepository) CountByConsumer(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT consumer, COUNT(*) FROM consumptions GROUP BY consumer`)
	if err != nil {
		return nil, fmt.Errorf("count consumptions: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var consumer string
		var n int
		if err := rows.Scan(&consumer, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[consumer] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counts: %w", err)
	}
	return counts, nil
}

var _ ConsumptionRepository = (*PgConsumptionRepository)(nil)
