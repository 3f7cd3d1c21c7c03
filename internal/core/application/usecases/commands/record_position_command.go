package commands

import (
	"errors"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/guard"
)

var (
	ErrRecordPositionCommandIsNotConstructed = errors.New(
		"RecordPositionCommand must be created via NewRecordPositionCommand constructor",
	)
	ErrReportedAtIsRequired = errors.New("reported at is required")
)

// RecordPositionCommand represents a driver's device reporting the vehicle's
// coordinates. Positions are pure telemetry: they never drive status.
// Heading and speed are optional, not every device reports them.
type RecordPositionCommand struct { //nolint:recvcheck //using for validation
	tripID     kernel.UUID
	position   kernel.GeoPoint
	heading    *float64
	speed      *float64
	reportedAt time.Time

	guard guard.ConstructorGuard
}

// NewRecordPositionCommand creates a command to record a position report.
// Validates the trip identifier, the coordinates, and the report time.
// Heading and speed range checks happen when the sample entity is built.
// Returns an error if any validation fails.
func NewRecordPositionCommand(
	tripID kernel.UUID,
	position kernel.GeoPoint,
	heading *float64,
	speed *float64,
	reportedAt time.Time,
) (RecordPositionCommand, error) {
	cmd := RecordPositionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTripID(tripID),
		cmd.setPosition(position),
		cmd.setReportedAt(reportedAt),
	); err != nil {
		return RecordPositionCommand{}, err
	}

	cmd.heading = heading
	cmd.speed = speed
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordPositionCommandIsNotConstructed if validation fails.
func (c RecordPositionCommand) Validate() error {
	return c.guard.Validate(ErrRecordPositionCommandIsNotConstructed)
}

// TripID returns the identifier of the reporting trip.
func (c RecordPositionCommand) TripID() kernel.UUID {
	return c.tripID
}

// Position returns the reported coordinates.
func (c RecordPositionCommand) Position() kernel.GeoPoint {
	return c.position
}

// Heading returns the compass heading in degrees, or nil.
func (c RecordPositionCommand) Heading() *float64 {
	return c.heading
}

// Speed returns the speed in km/h, or nil.
func (c RecordPositionCommand) Speed() *float64 {
	return c.speed
}

// ReportedAt returns when the device captured the position.
func (c RecordPositionCommand) ReportedAt() time.Time {
	return c.reportedAt
}

func (c *RecordPositionCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *RecordPositionCommand) setPosition(position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}

	c.position = position
	return nil
}

func (c *RecordPositionCommand) setReportedAt(reportedAt time.Time) error {
	if reportedAt.IsZero() {
		return ErrReportedAtIsRequired
	}

	c.reportedAt = reportedAt
	return nil
}
