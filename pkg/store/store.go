// Package store persists distribution batches. The latest batch per
// commodity is the unit of persistence: saving replaces the previous
// batch wholesale, matching the import model where each parse supersedes
// prior data.
package store

import (
	"context"
	"errors"

	"github.com/hadesxkore/bhss-distribution/pkg/distribution/models"
)

// ErrBatchNotFound indicates no batch has been saved for the commodity.
var ErrBatchNotFound = errors.New("no batch found")

// ErrRowNotFound indicates the row id is not in the commodity's latest
// batch.
var ErrRowNotFound = errors.New("row not found")

// Store is the persistence boundary for distribution batches.
type Store interface {
	// SaveBatch persists a new batch, making it the commodity's latest.
	SaveBatch(ctx context.Context, b *models.Batch) error
	// LatestBatch returns the commodity's most recently saved batch.
	LatestBatch(ctx context.Context, commodity string) (*models.Batch, error)
	// UpdateRow sets one quantity field of one row in the commodity's
	// latest batch.
	UpdateRow(ctx context.Context, commodity, rowID, field string, value float64) error
	// Close releases the store's resources.
	Close()
}
