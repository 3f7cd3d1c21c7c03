package ports

import (
	"context"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/rating"
)

// RatingRepository defines the persistence contract for rating aggregates.
// Ratings are immutable, so there is no Update.
type RatingRepository interface {
	// Add persists a new rating aggregate to storage.
	// The rating must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *rating.Rating) error

	// Get retrieves a rating aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rating.Rating, error)

	// GetByRequestID retrieves the rating recorded for the given request, if
	// any. Used to enforce the one-rating-per-request rule.
	GetByRequestID(ctx context.Context, requestID kernel.UUID) (*rating.Rating, error)

	// GetAll retrieves every rating. Used to seed in-process caches after a
	// feed (re)subscription.
	GetAll(ctx context.Context) ([]*rating.Rating, error)
}
