package offer

import (
	"errors"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
)

var (
	// ErrOfferIsNotConstructed is returned when an Offer instance was not
	// created through NewOffer or RestoreOffer.
	ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer or RestoreOffer")
)

// Offer is a driver's bid on a transport request: a price, an optional
// duration estimate, and a settlement status. The price an offer carries at
// acceptance time becomes the invoice amount, so it is immutable after
// construction.
//
// Offer follows these invariants:
//   - Must reference a valid request and driver
//   - Price must be positive; estimated hours, when given, must be positive
//   - Settles exactly once: Pending -> Accepted | Rejected | Expired
//   - Can only be created through NewOffer or RestoreOffer
type Offer struct {
	id        kernel.UUID
	requestID kernel.UUID
	driverID  kernel.UUID

	price          int64
	estimatedHours *int
	notes          *string

	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewOffer creates a Pending offer with validation. This is the only way for
// application code to create a valid Offer.
func NewOffer(
	id kernel.UUID,
	requestID kernel.UUID,
	driverID kernel.UUID,
	price int64,
	estimatedHours *int,
	notes *string,
	createdAt time.Time,
) (*Offer, error) {
	o := &Offer{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRequestID(requestID),
		o.setDriverID(driverID),
		o.setPrice(price),
		o.setEstimatedHours(estimatedHours),
	); err != nil {
		return nil, err
	}

	o.notes = notes
	return o, nil
}

// RestoreOffer reconstructs an offer from persistence without rerunning the
// creation workflow.
func RestoreOffer(
	id kernel.UUID,
	requestID kernel.UUID,
	driverID kernel.UUID,
	price int64,
	estimatedHours *int,
	notes *string,
	status Status,
	createdAt time.Time,
) (*Offer, error) {
	o, err := NewOffer(id, requestID, driverID, price, estimatedHours, notes, createdAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the Offer instance was properly constructed.
func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}
	return nil
}

// IsEqual compares two offers by their unique identifiers.
func (o *Offer) IsEqual(other *Offer) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the offer's unique identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// RequestID returns the identifier of the request this offer bids on.
func (o *Offer) RequestID() kernel.UUID {
	return o.requestID
}

// DriverID returns the bidding driver's identifier.
func (o *Offer) DriverID() kernel.UUID {
	return o.driverID
}

// Price returns the bid amount in the smallest currency unit.
func (o *Offer) Price() int64 {
	return o.price
}

// EstimatedHours returns the driver's duration estimate, or nil.
func (o *Offer) EstimatedHours() *int {
	return o.estimatedHours
}

// Notes returns the free-form driver notes, or nil.
func (o *Offer) Notes() *string {
	return o.notes
}

// Status returns the current settlement status.
func (o *Offer) Status() Status {
	return o.status
}

// CreatedAt returns when the offer was submitted.
func (o *Offer) CreatedAt() time.Time {
	return o.createdAt
}

// Accept settles the offer as the winner of its request.
func (o *Offer) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject settles the offer as a loser: another offer won, or the request was
// cancelled.
func (o *Offer) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Expire settles the offer as aged out. Called by the expiry job for pending
// offers older than the configured horizon.
func (o *Offer) Expire() error {
	newStatus, err := o.status.Expire()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	o.requestID = requestID
	return nil
}

func (o *Offer) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	o.driverID = driverID
	return nil
}

func (o *Offer) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price must be greater than 0")
	}
	o.price = price
	return nil
}

func (o *Offer) setEstimatedHours(hours *int) error {
	if hours != nil && *hours <= 0 {
		return errs.NewValueIsInvalidError("estimated hours must be greater than 0")
	}
	o.estimatedHours = hours
	return nil
}
