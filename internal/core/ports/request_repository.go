package ports

import (
	"context"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for request aggregates.
// Provides methods for storing, retrieving, and querying transport requests
// based on their lifecycle status.
type RequestRepository interface {
	// Add persists a new request aggregate to storage.
	// The request must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *request.Request) error

	// Update persists changes to an existing request aggregate.
	// The request must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *request.Request) error

	// Get retrieves a request aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*request.Request, error)

	// GetForUpdate retrieves a request and locks its row for the duration of
	// the current transaction. Used by the acceptance orchestrator to
	// serialize concurrent acceptances of the same request.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*request.Request, error)

	// GetAll retrieves every request. Used to seed in-process caches after a
	// feed (re)subscription.
	GetAll(ctx context.Context) ([]*request.Request, error)
}
