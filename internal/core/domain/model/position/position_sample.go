// Package position contains the PositionSample entity: one append-only
// telemetry reading from a driver's device. Samples are pure telemetry and
// never drive trip status.
package position

import (
	"errors"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
)

var (
	// ErrPositionSampleIsNotConstructed is returned when a PositionSample was
	// not created through NewPositionSample or RestorePositionSample.
	ErrPositionSampleIsNotConstructed = errors.New(
		"PositionSample must be created via NewPositionSample or RestorePositionSample",
	)
)

// PositionSample is one recorded vehicle position. Heading and speed are
// optional: not every device reports them.
//
// PositionSample follows these invariants:
//   - Must reference a valid trip and driver
//   - Heading, when present, lies within [0, 360)
//   - Speed, when present, is non-negative
//   - Immutable once recorded
type PositionSample struct {
	id       kernel.UUID
	tripID   kernel.UUID
	driverID kernel.UUID

	point   kernel.GeoPoint
	heading *float64
	speed   *float64

	reportedAt time.Time

	isConstructed bool
}

// NewPositionSample creates a position sample with validation. This is the
// only way for application code to create a valid PositionSample.
func NewPositionSample(
	id kernel.UUID,
	tripID kernel.UUID,
	driverID kernel.UUID,
	point kernel.GeoPoint,
	heading *float64,
	speed *float64,
	reportedAt time.Time,
) (*PositionSample, error) {
	s := &PositionSample{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTripID(tripID),
		s.setDriverID(driverID),
		s.setPoint(point),
		s.setHeading(heading),
		s.setSpeed(speed),
		s.setReportedAt(reportedAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestorePositionSample reconstructs a sample from persistence. Identical to
// NewPositionSample since samples carry no lifecycle state.
func RestorePositionSample(
	id kernel.UUID,
	tripID kernel.UUID,
	driverID kernel.UUID,
	point kernel.GeoPoint,
	heading *float64,
	speed *float64,
	reportedAt time.Time,
) (*PositionSample, error) {
	return NewPositionSample(id, tripID, driverID, point, heading, speed, reportedAt)
}

// Validate ensures the PositionSample instance was properly constructed.
func (s *PositionSample) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrPositionSampleIsNotConstructed
	}
	return nil
}

// ID returns the sample's unique identifier.
func (s *PositionSample) ID() kernel.UUID {
	return s.id
}

// TripID returns the identifier of the reporting trip.
func (s *PositionSample) TripID() kernel.UUID {
	return s.tripID
}

// DriverID returns the reporting driver's identifier.
func (s *PositionSample) DriverID() kernel.UUID {
	return s.driverID
}

// Point returns the recorded coordinates.
func (s *PositionSample) Point() kernel.GeoPoint {
	return s.point
}

// Heading returns the compass heading in degrees, or nil.
func (s *PositionSample) Heading() *float64 {
	return s.heading
}

// Speed returns the speed in km/h, or nil.
func (s *PositionSample) Speed() *float64 {
	return s.speed
}

// ReportedAt returns when the device captured the position.
func (s *PositionSample) ReportedAt() time.Time {
	return s.reportedAt
}

func (s *PositionSample) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *PositionSample) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	s.tripID = tripID
	return nil
}

func (s *PositionSample) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	s.driverID = driverID
	return nil
}

func (s *PositionSample) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	s.point = point
	return nil
}

func (s *PositionSample) setHeading(heading *float64) error {
	if heading != nil && (*heading < 0 || *heading >= 360) {
		return errs.NewValueIsOutOfRangeError("heading", *heading, 0, 360)
	}
	s.heading = heading
	return nil
}

func (s *PositionSample) setSpeed(speed *float64) error {
	if speed != nil && *speed < 0 {
		return errs.NewValueIsInvalidError("speed must not be negative")
	}
	s.speed = speed
	return nil
}

func (s *PositionSample) setReportedAt(reportedAt time.Time) error {
	if reportedAt.IsZero() {
		return errs.NewValueIsRequiredError("reportedAt")
	}
	s.reportedAt = reportedAt
	return nil
}
