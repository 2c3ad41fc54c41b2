package store

import (
	"context"
	"sync"

	"github.com/hadesxkore/bhss-distribution/pkg/distribution/models"
)

// Memory is an in-memory Store keyed by commodity. It backs the server
// when no database is configured and the tests.
type Memory struct {
	mu      sync.RWMutex
	batches map[string]*models.Batch
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{batches: make(map[string]*models.Batch)}
}

// SaveBatch replaces the commodity's latest batch under a single swap.
func (m *Memory) SaveBatch(_ context.Context, b *models.Batch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batches[b.Commodity] = b.Clone()
	return nil
}

// LatestBatch returns a copy of the commodity's latest batch; callers
// may mutate the result freely.
func (m *Memory) LatestBatch(_ context.Context, commodity string) (*models.Batch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.batches[commodity]
	if !ok {
		return nil, ErrBatchNotFound
	}
	return b.Clone(), nil
}

// UpdateRow sets one quantity field of one row in the latest batch.
func (m *Memory) UpdateRow(_ context.Context, commodity, rowID, field string, value float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.batches[commodity]
	if !ok {
		return ErrBatchNotFound
	}
	for i := range b.Items {
		if b.Items[i].ID != rowID {
			continue
		}
		b.Items[i].Quantities[field] = value
		return nil
	}
	return ErrRowNotFound
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() {}
