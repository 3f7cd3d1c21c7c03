package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/trip"
	"freightops/internal/pkg/guard"
)

var (
	ErrReportTripProgressCommandIsNotConstructed = errors.New(
		"ReportTripProgressCommand must be created via NewReportTripProgressCommand constructor",
	)
	ErrProgressIsOutOfRange = errors.New("progress must be between 0 and 100")
)

// ReportTripProgressCommand represents a driver reporting a trip milestone
// and completion percentage.
type ReportTripProgressCommand struct { //nolint:recvcheck //using for validation
	tripID   kernel.UUID
	status   trip.Status
	progress int

	guard guard.ConstructorGuard
}

// NewReportTripProgressCommand creates a command to report trip progress.
// Validates the trip identifier, the target milestone, and the percentage.
// Returns an error if any validation fails.
func NewReportTripProgressCommand(
	tripID kernel.UUID,
	status trip.Status,
	progress int,
) (ReportTripProgressCommand, error) {
	cmd := ReportTripProgressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTripID(tripID),
		cmd.setStatus(status),
		cmd.setProgress(progress),
	); err != nil {
		return ReportTripProgressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReportTripProgressCommandIsNotConstructed if validation fails.
func (c ReportTripProgressCommand) Validate() error {
	return c.guard.Validate(ErrReportTripProgressCommandIsNotConstructed)
}

// TripID returns the identifier of the reporting trip.
func (c ReportTripProgressCommand) TripID() kernel.UUID {
	return c.tripID
}

// Status returns the reported milestone.
func (c ReportTripProgressCommand) Status() trip.Status {
	return c.status
}

// Progress returns the reported completion percentage.
func (c ReportTripProgressCommand) Progress() int {
	return c.progress
}

func (c *ReportTripProgressCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *ReportTripProgressCommand) setStatus(status trip.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *ReportTripProgressCommand) setProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return ErrProgressIsOutOfRange
	}

	c.progress = progress
	return nil
}
