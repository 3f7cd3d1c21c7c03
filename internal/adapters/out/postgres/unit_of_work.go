// Package postgres provides the GORM-based Unit of Work implementation.
// The Unit of Work pattern maintains a list of aggregates affected by a
// business transaction and coordinates writing out changes atomically.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, echo.Publish)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.RequestRepository().Update(ctx, req); err != nil {
//	    return err
//	}
//	if err := uow.TripRepository().Add(ctx, tr); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation gets a fresh unit of work instance. Multiple
// goroutines must use separate instances; the acceptance race between
// concurrent AcceptOffer calls is resolved by row locks taken through
// RequestRepository().GetForUpdate within each transaction.
//
// Repositories register every aggregate they add or update; after a
// successful commit the tracked set is handed to the factory's onCommit
// hook, which the composition root wires to the entity cache's command
// echo.
package postgres

import (
	"context"

	"freightops/internal/adapters/out/postgres/invoicerepo"
	"freightops/internal/adapters/out/postgres/offerrepo"
	"freightops/internal/adapters/out/postgres/positionrepo"
	"freightops/internal/adapters/out/postgres/ratingrepo"
	"freightops/internal/adapters/out/postgres/requestrepo"
	"freightops/internal/adapters/out/postgres/triprepo"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances backed by a shared
// GORM database connection. Each created instance maintains its own
// transaction state, isolated from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	onCommit func(aggregates []ports.TrackedAggregate)
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection is shared by all instances.
// onCommit, when non-nil, runs after every successful commit with the
// aggregates the transaction added or updated.
func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	onCommit func(aggregates []ports.TrackedAggregate),
) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, onCommit: onCommit}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		onCommit:          f.onCommit,
		trackedAggregates: make([]ports.TrackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for a single business operation. Repository accessors return
// repositories bound to the active transaction when one exists, or to the
// main connection otherwise.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	onCommit          func(aggregates []ports.TrackedAggregate)
	trackedAggregates []ports.TrackedAggregate
}

// Begin initiates a new database transaction. Subsequent repository
// operations execute within this transaction. Calling Begin again on an
// instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction and
// passes the tracked aggregates to the onCommit hook. After commit the
// transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	if uow.onCommit != nil && len(uow.trackedAggregates) > 0 {
		uow.onCommit(uow.trackedAggregates)
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]

	return nil
}

// Rollback discards all changes made within the current transaction along
// with the tracked aggregates. After rollback the transaction is closed and
// cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// RequestRepository provides access to request persistence within the unit
// of work.
func (uow *GormUnitOfWork) RequestRepository() ports.RequestRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return requestrepo.NewGormRequestRepository(db, uow)
}

// OfferRepository provides access to offer persistence within the unit of work.
func (uow *GormUnitOfWork) OfferRepository() ports.OfferRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return offerrepo.NewGormOfferRepository(db, uow)
}

// TripRepository provides access to trip persistence within the unit of work.
func (uow *GormUnitOfWork) TripRepository() ports.TripRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return triprepo.NewGormTripRepository(db, uow)
}

// InvoiceRepository provides access to invoice persistence within the unit
// of work.
func (uow *GormUnitOfWork) InvoiceRepository() ports.InvoiceRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return invoicerepo.NewGormInvoiceRepository(db, uow)
}

// RatingRepository provides access to rating persistence within the unit
// of work.
func (uow *GormUnitOfWork) RatingRepository() ports.RatingRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return ratingrepo.NewGormRatingRepository(db, uow)
}

// PositionSampleRepository provides access to position telemetry persistence
// within the unit of work.
func (uow *GormUnitOfWork) PositionSampleRepository() ports.PositionSampleRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return positionrepo.NewGormPositionSampleRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call this after adds and updates so
// post-commit processing can see everything the transaction touched.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, ports.TrackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
