package ports

import (
	"context"

	"freightops/internal/core/domain/model/invoice"
	"freightops/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice aggregates.
type InvoiceRepository interface {
	// Add persists a new invoice aggregate to storage.
	// The invoice must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice aggregate.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetByRequestID retrieves the invoice billing the given request.
	GetByRequestID(ctx context.Context, requestID kernel.UUID) (*invoice.Invoice, error)

	// GetAll retrieves every invoice. Used to seed in-process caches after a
	// feed (re)subscription.
	GetAll(ctx context.Context) ([]*invoice.Invoice, error)
}
