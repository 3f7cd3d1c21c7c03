package ports

import (
	"context"

	"freightops/internal/core/domain/model/kernel"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// TrackedAggregate records one aggregate added or updated during a unit of
// work. The tracked set is handed to post-commit processing (the command
// echo into the entity cache) once the transaction commits.
type TrackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// RequestRepository returns a RequestRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	RequestRepository() RequestRepository

	// OfferRepository returns an OfferRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	OfferRepository() OfferRepository

	// TripRepository returns a TripRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	TripRepository() TripRepository

	// InvoiceRepository returns an InvoiceRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	InvoiceRepository() InvoiceRepository

	// RatingRepository returns a RatingRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	RatingRepository() RatingRepository

	// PositionSampleRepository returns a PositionSampleRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	PositionSampleRepository() PositionSampleRepository
}
