package trip

import (
	"errors"
	"fmt"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
)

var (
	// ErrTripIsNotConstructed is returned when a Trip instance was not
	// created through NewTrip or RestoreTrip.
	ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip or RestoreTrip")
)

// Trip is the aggregate root of a delivery execution. It is created inside
// the acceptance transaction, Assigned with zero progress, and advances
// through the milestone chain as the driver reports.
//
// Trip follows these invariants:
//   - Must reference a valid request, winning offer, and driver
//   - Status advances one milestone at a time, never skipping or regressing
//   - Progress stays within [0, 100] and never decreases
//   - A report that would regress status or progress is dropped whole
//   - Can only be created through NewTrip or RestoreTrip
type Trip struct {
	id        kernel.UUID
	requestID kernel.UUID
	offerID   kernel.UUID
	driverID  kernel.UUID

	status   Status
	progress int

	position   *kernel.GeoPoint
	reportedAt *time.Time

	isConstructed bool
}

// NewTrip creates an Assigned trip with zero progress. This is the only way
// for application code to create a valid Trip.
func NewTrip(
	id kernel.UUID,
	requestID kernel.UUID,
	offerID kernel.UUID,
	driverID kernel.UUID,
) (*Trip, error) {
	t := &Trip{
		status:        Assigned,
		progress:      0,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setRequestID(requestID),
		t.setOfferID(offerID),
		t.setDriverID(driverID),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTrip reconstructs a trip from persistence without rerunning the
// creation workflow.
func RestoreTrip(
	id kernel.UUID,
	requestID kernel.UUID,
	offerID kernel.UUID,
	driverID kernel.UUID,
	status Status,
	progress int,
	position *kernel.GeoPoint,
	reportedAt *time.Time,
) (*Trip, error) {
	t, err := NewTrip(id, requestID, offerID, driverID)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if progress < 0 || progress > 100 {
		return nil, errs.NewValueIsOutOfRangeError("progress", progress, 0, 100)
	}

	t.status = status
	t.progress = progress
	t.position = position
	t.reportedAt = reportedAt
	return t, nil
}

// Validate ensures the Trip instance was properly constructed.
func (t *Trip) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTripIsNotConstructed
	}
	return nil
}

// IsEqual compares two trips by their unique identifiers.
func (t *Trip) IsEqual(other *Trip) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the trip's unique identifier.
func (t *Trip) ID() kernel.UUID {
	return t.id
}

// RequestID returns the identifier of the request this trip executes.
func (t *Trip) RequestID() kernel.UUID {
	return t.requestID
}

// OfferID returns the identifier of the winning offer.
func (t *Trip) OfferID() kernel.UUID {
	return t.offerID
}

// DriverID returns the assigned driver's identifier.
func (t *Trip) DriverID() kernel.UUID {
	return t.driverID
}

// Status returns the current milestone.
func (t *Trip) Status() Status {
	return t.status
}

// Progress returns the completion percentage, 0 to 100.
func (t *Trip) Progress() int {
	return t.progress
}

// Position returns the vehicle's last reported position, or nil if the
// driver has not reported yet.
func (t *Trip) Position() *kernel.GeoPoint {
	return t.position
}

// ReportedAt returns when the position was last reported, or nil.
func (t *Trip) ReportedAt() *time.Time {
	return t.reportedAt
}

// IsActive reports whether the trip still counts as an active shipment.
func (t *Trip) IsActive() bool {
	return !t.status.IsTerminal()
}

// Report applies a driver progress report: a target milestone and a
// completion percentage. The milestone must be the current one (progress-only
// report) or its immediate successor; the percentage must not decrease.
// A report that would regress either field is rejected whole with a
// StaleUpdateError and the trip keeps its current state.
func (t *Trip) Report(status Status, progress int) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if progress < 0 || progress > 100 {
		return errs.NewValueIsOutOfRangeError("progress", progress, 0, 100)
	}
	if progress < t.progress {
		return errs.NewStaleUpdateError("trip", fmt.Sprintf(
			"progress regressed from %d to %d", t.progress, progress))
	}

	if status != t.status {
		newStatus, err := t.status.AdvanceTo(status)
		if err != nil {
			// Regressing to an earlier milestone is a stale report from a
			// lagging device; skipping ahead is an illegal transition.
			if status < t.status {
				return errs.NewStaleUpdateError("trip", "milestone regressed from "+
					t.status.String()+" to "+status.String())
			}
			return err
		}
		t.status = newStatus
	} else if t.status.IsTerminal() {
		return errs.NewIllegalTransitionError("trip", t.status.String(), status.String())
	}

	t.progress = progress
	if t.status == Completed {
		t.progress = 100
	}
	return nil
}

// RecordPosition stores the vehicle's latest coordinates. Position reports
// older than the last one recorded are dropped as stale.
func (t *Trip) RecordPosition(position kernel.GeoPoint, at time.Time) error {
	if err := position.Validate(); err != nil {
		return err
	}
	if t.status.IsTerminal() {
		return errs.NewIllegalTransitionError("trip", t.status.String(), "position update")
	}
	if t.reportedAt != nil && at.Before(*t.reportedAt) {
		return errs.NewStaleUpdateError("trip", "position report older than last recorded")
	}

	t.position = &position
	t.reportedAt = &at
	return nil
}

// Cancel abandons the trip from any non-terminal milestone.
func (t *Trip) Cancel() error {
	newStatus, err := t.status.Cancel()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trip) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	t.requestID = requestID
	return nil
}

func (t *Trip) setOfferID(offerID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}
	t.offerID = offerID
	return nil
}

func (t *Trip) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	t.driverID = driverID
	return nil
}
