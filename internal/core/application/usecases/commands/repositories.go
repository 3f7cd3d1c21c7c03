// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freightops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RequestRepoFactory provides access to the request repository within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// OfferRepoFactory provides access to the offer repository within a transaction.
	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	// TripRepoFactory provides access to the trip repository within a transaction.
	TripRepoFactory interface {
		TripRepository() ports.TripRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// RatingRepoFactory provides access to the rating repository within a transaction.
	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	// RequestUoW manages transactions for request-only operations.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
	}

	// RequestUoWFactory creates new request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// OfferUoW manages transactions for offer-only operations.
	// Used by the expiry job, which settles aged pending offers.
	OfferUoW interface {
		TxManager
		OfferRepoFactory
	}

	// OfferUoWFactory creates new offer unit of work instances.
	OfferUoWFactory interface {
		Create() OfferUoW
	}

	// BiddingUoW manages transactions spanning requests and offers.
	// Used by offer submission, which records the offer and fires the
	// first-offer reaction on the request in one transaction.
	BiddingUoW interface {
		TxManager
		RequestRepoFactory
		OfferRepoFactory
	}

	// BiddingUoWFactory creates new bidding unit of work instances.
	BiddingUoWFactory interface {
		Create() BiddingUoW
	}

	// AcceptanceUoW manages the acceptance transaction: it spans requests,
	// offers, trips, and invoices so the whole settlement is atomic.
	AcceptanceUoW interface {
		TxManager
		RequestRepoFactory
		OfferRepoFactory
		TripRepoFactory
		InvoiceRepoFactory
	}

	// AcceptanceUoWFactory creates new acceptance unit of work instances.
	AcceptanceUoWFactory interface {
		Create() AcceptanceUoW
	}

	// PositionSampleRepoFactory provides access to the position sample repository within a transaction.
	PositionSampleRepoFactory interface {
		PositionSampleRepository() ports.PositionSampleRepository
	}

	// TripUoW manages transactions spanning trips and requests.
	// Trip milestones drive request status, so both move together.
	TripUoW interface {
		TxManager
		TripRepoFactory
		RequestRepoFactory
	}

	// TripUoWFactory creates new trip unit of work instances.
	TripUoWFactory interface {
		Create() TripUoW
	}

	// TelemetryUoW manages the position report transaction: the trip's
	// current coordinates and the appended sample row move together.
	TelemetryUoW interface {
		TxManager
		TripRepoFactory
		PositionSampleRepoFactory
	}

	// TelemetryUoWFactory creates new telemetry unit of work instances.
	TelemetryUoWFactory interface {
		Create() TelemetryUoW
	}

	// CancellationUoW manages the cancellation transaction: withdrawing a
	// request also rejects its pending offers and abandons its trip.
	CancellationUoW interface {
		TxManager
		RequestRepoFactory
		OfferRepoFactory
		TripRepoFactory
	}

	// CancellationUoWFactory creates new cancellation unit of work instances.
	CancellationUoWFactory interface {
		Create() CancellationUoW
	}

	// RatingUoW manages transactions spanning ratings and trips.
	RatingUoW interface {
		TxManager
		RatingRepoFactory
		TripRepoFactory
	}

	// RatingUoWFactory creates new rating unit of work instances.
	RatingUoWFactory interface {
		Create() RatingUoW
	}
)
