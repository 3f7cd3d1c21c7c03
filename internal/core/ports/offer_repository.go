package ports

import (
	"context"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for offer aggregates.
type OfferRepository interface {
	// Add persists a new offer aggregate to storage.
	// The offer must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *offer.Offer) error

	// Update persists changes to an existing offer aggregate.
	Update(ctx context.Context, aggregate *offer.Offer) error

	// Get retrieves an offer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// GetAllByRequestID retrieves every offer bidding on the given request.
	// The acceptance orchestrator uses this to settle the whole set in one
	// transaction.
	GetAllByRequestID(ctx context.Context, requestID kernel.UUID) ([]*offer.Offer, error)

	// GetAllPendingOlderThan retrieves pending offers submitted before the
	// cutoff. Used by the expiry job.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*offer.Offer, error)

	// GetAll retrieves every offer. Used to seed in-process caches after a
	// feed (re)subscription.
	GetAll(ctx context.Context) ([]*offer.Offer, error)
}
