package request

import (
	"errors"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not
	// created through NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest")
)

// Request is the aggregate root of a client's transport job posting.
// It owns the order lifecycle state machine: every legal status move goes
// through one of its transition methods, and the methods reject anything
// that is not the unique legal successor of the current state.
//
// Request follows these invariants:
//   - Must have a valid unique identifier and client identifier
//   - Origin and destination must be non-empty and distinct places
//   - Trucks count must be positive
//   - Status only moves forward along the declared state graph
//   - Can only be created through NewRequest or RestoreRequest
//
// Requests are never physically deleted; withdrawal is the Cancelled status.
type Request struct {
	id       kernel.UUID
	clientID kernel.UUID

	origin      string
	destination string
	truckType   TruckType
	trucksCount int

	// minManufacturingYear is the oldest acceptable vehicle year (nil = any).
	minManufacturingYear *int
	notes                *string

	status     Status
	acceptedAt *time.Time

	isConstructed bool
}

// NewRequest creates a Pending request with validation. This is the only way
// for application code to create a valid Request.
func NewRequest(
	id kernel.UUID,
	clientID kernel.UUID,
	origin string,
	destination string,
	truckType TruckType,
	trucksCount int,
	minManufacturingYear *int,
	notes *string,
) (*Request, error) {
	r := &Request{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setClientID(clientID),
		r.setRoute(origin, destination),
		r.setTruckType(truckType),
		r.setTrucksCount(trucksCount),
		r.setMinManufacturingYear(minManufacturingYear),
	); err != nil {
		return nil, err
	}

	r.notes = notes
	return r, nil
}

// RestoreRequest reconstructs a request from persistence without rerunning
// the creation workflow. Status must be a valid value; field validation is
// identical to NewRequest.
func RestoreRequest(
	id kernel.UUID,
	clientID kernel.UUID,
	origin string,
	destination string,
	truckType TruckType,
	trucksCount int,
	minManufacturingYear *int,
	notes *string,
	status Status,
	acceptedAt *time.Time,
) (*Request, error) {
	r, err := NewRequest(id, clientID, origin, destination, truckType, trucksCount, minManufacturingYear, notes)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	r.status = status
	r.acceptedAt = acceptedAt
	return r, nil
}

// Validate ensures the Request instance was properly constructed.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// IsEqual compares two requests by their unique identifiers.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// ClientID returns the posting client's identifier.
func (r *Request) ClientID() kernel.UUID {
	return r.clientID
}

// Origin returns the pickup place name.
func (r *Request) Origin() string {
	return r.origin
}

// Destination returns the delivery place name.
func (r *Request) Destination() string {
	return r.destination
}

// TruckType returns the requested vehicle class.
func (r *Request) TruckType() TruckType {
	return r.truckType
}

// TrucksCount returns how many vehicles the job needs.
func (r *Request) TrucksCount() int {
	return r.trucksCount
}

// MinManufacturingYear returns the oldest acceptable vehicle year, or nil.
func (r *Request) MinManufacturingYear() *int {
	return r.minManufacturingYear
}

// Notes returns the free-form client notes, or nil.
func (r *Request) Notes() *string {
	return r.notes
}

// Status returns the current lifecycle status.
func (r *Request) Status() Status {
	return r.status
}

// AcceptedAt returns when an offer was accepted for this request, or nil.
func (r *Request) AcceptedAt() *time.Time {
	return r.acceptedAt
}

// ReceiveOffers moves Pending -> OffersReceived. Called by the
// offer-submission reaction when the first offer for this request is
// recorded; calling it again for subsequent offers is a no-op.
func (r *Request) ReceiveOffers() error {
	if r.status == OffersReceived {
		return nil
	}

	newStatus, err := r.status.ReceiveOffers()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Accept settles the request on exactly one offer at the given time.
// Only legal while the request is Pending or OffersReceived; the
// orchestrator relies on this to detect a lost acceptance race.
func (r *Request) Accept(at time.Time) error {
	newStatus, err := r.status.Accept()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.acceptedAt = &at
	return nil
}

// Start moves Accepted -> InProgress when the trip first leaves Assigned.
func (r *Request) Start() error {
	newStatus, err := r.status.Start()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Complete moves InProgress -> Completed when the trip reaches its terminal
// state. This is the sole trigger for request completion.
func (r *Request) Complete() error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Cancel withdraws the request. Legal from Pending, OffersReceived, and
// Accepted; once the trip is moving the request can no longer be cancelled.
func (r *Request) Cancel() error {
	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	r.clientID = clientID
	return nil
}

func (r *Request) setRoute(origin, destination string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	if origin == destination {
		return errs.NewValueIsInvalidError("destination must differ from origin")
	}

	r.origin = origin
	r.destination = destination
	return nil
}

func (r *Request) setTruckType(truckType TruckType) error {
	if err := truckType.Validate(); err != nil {
		return err
	}
	r.truckType = truckType
	return nil
}

func (r *Request) setTrucksCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidError("trucks count must be greater than 0")
	}
	r.trucksCount = count
	return nil
}

func (r *Request) setMinManufacturingYear(year *int) error {
	if year != nil && (*year < 1980 || *year > time.Now().Year()+1) {
		return errs.NewValueIsOutOfRangeError("min manufacturing year", *year, 1980, time.Now().Year()+1)
	}
	r.minManufacturingYear = year
	return nil
}
