package repository

import (
	"context"
	"sync"

	"github.com/ricirt/producer-consumer/internal/domain"
)

// MemoryConsumptionRepository keeps the latest size records in a ring buffer.
// Per-consumer counts cover every record ever written, not only retained ones.
type MemoryConsumptionRepository struct {
	mu     sync.RWMutex
	ring   []domain.Consumption
	next   int
	full   bool
	counts map[string]int
}

func NewMemoryConsumptionRepository(size int) *MemoryConsumptionRepository {
	if size < 1 {
		size = 1
	}
	return &MemoryConsumptionRepository{
		ring:   make([]domain.Consumption, size),
		counts: make(map[string]int),
	}
}

func (m *MemoryConsumptionRepository) Record(_ context.Context, c *domain.Consumption) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ring[m.next] = *c
	m.next = (m.next + 1) % len(m.ring)
	if m.next == 0 {
		m.full = true
	}
	m.counts[c.Consumer]++
	return nil
}

func (m *MemoryConsumptionRepository) List(_ context.Context, filter domain.ConsumptionFilter) ([]*domain.Consumption, error) {
	limit := max(filter.Limit, 0)

	m.mu.RLock()
	defer m.mu.RUnlock()

	n := m.next
	if m.full {
		n = len(m.ring)
	}
	result := make([]*domain.Consumption, 0, min(n, limit))
	for i := 1; i <= n && len(result) < limit; i++ {
		c := m.ring[(m.next-i+len(m.ring))%len(m.ring)]
		if filter.Consumer != nil && c.Consumer != *filter.Consumer {
			continue
		}
		result = append(result, &c)
	}
	return result, nil
}

func (m *MemoryConsumptionRepository) CountByConsumer(_ context.Context) (map[string]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[string]int, len(m.counts))
	for k, v := range m.counts {
		counts[k] = v
	}
	return counts, nil
}

var _ ConsumptionRepository = (*MemoryConsumptionRepository)(nil)
