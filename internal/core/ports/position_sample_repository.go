package ports

import (
	"context"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/position"
)

// PositionSampleRepository defines the persistence contract for position
// samples. The table is append-only: samples are never updated or deleted.
type PositionSampleRepository interface {
	// Add persists a new position sample to storage.
	Add(ctx context.Context, sample *position.PositionSample) error

	// GetAllByTripID retrieves every sample recorded for the given trip,
	// oldest first.
	GetAllByTripID(ctx context.Context, tripID kernel.UUID) ([]*position.PositionSample, error)
}
