package ports

import (
	"context"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/trip"
)

// TripRepository defines the persistence contract for trip aggregates.
type TripRepository interface {
	// Add persists a new trip aggregate to storage.
	// The trip must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *trip.Trip) error

	// Update persists changes to an existing trip aggregate.
	Update(ctx context.Context, aggregate *trip.Trip) error

	// Get retrieves a trip aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error)

	// GetByRequestID retrieves the trip executing the given request.
	GetByRequestID(ctx context.Context, requestID kernel.UUID) (*trip.Trip, error)

	// GetAllActive retrieves every trip in a non-terminal milestone.
	GetAllActive(ctx context.Context) ([]*trip.Trip, error)

	// GetAll retrieves every trip. Used to seed in-process caches after a
	// feed (re)subscription.
	GetAll(ctx context.Context) ([]*trip.Trip, error)
}
