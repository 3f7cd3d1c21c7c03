package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/guard"
)

var (
	ErrSubmitOfferCommandIsNotConstructed = errors.New(
		"SubmitOfferCommand must be created via NewSubmitOfferCommand constructor",
	)
	ErrPriceIsInvalid          = errors.New("price must be greater than 0")
	ErrEstimatedHoursIsInvalid = errors.New("estimated hours must be greater than 0")
)

// SubmitOfferCommand represents a driver bidding on a transport request.
type SubmitOfferCommand struct { //nolint:recvcheck //using for validation
	offerID   kernel.UUID
	requestID kernel.UUID
	driverID  kernel.UUID
	price     int64

	estimatedHours *int
	notes          *string

	guard guard.ConstructorGuard
}

// NewSubmitOfferCommand creates a command to bid on a request.
// Validates identifiers, the price, and the optional duration estimate.
// Returns an error if any validation fails.
func NewSubmitOfferCommand(
	offerID kernel.UUID,
	requestID kernel.UUID,
	driverID kernel.UUID,
	price int64,
	estimatedHours *int,
	notes *string,
) (SubmitOfferCommand, error) {
	cmd := SubmitOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOfferID(offerID),
		cmd.setRequestID(requestID),
		cmd.setDriverID(driverID),
		cmd.setPrice(price),
		cmd.setEstimatedHours(estimatedHours),
	); err != nil {
		return SubmitOfferCommand{}, err
	}

	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOfferCommandIsNotConstructed if validation fails.
func (c SubmitOfferCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOfferCommandIsNotConstructed)
}

// OfferID returns the unique identifier for the offer.
func (c SubmitOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// RequestID returns the identifier of the request being bid on.
func (c SubmitOfferCommand) RequestID() kernel.UUID {
	return c.requestID
}

// DriverID returns the bidding driver's identifier.
func (c SubmitOfferCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Price returns the bid amount in the smallest currency unit.
func (c SubmitOfferCommand) Price() int64 {
	return c.price
}

// EstimatedHours returns the driver's duration estimate, or nil.
func (c SubmitOfferCommand) EstimatedHours() *int {
	return c.estimatedHours
}

// Notes returns the free-form driver notes, or nil.
func (c SubmitOfferCommand) Notes() *string {
	return c.notes
}

func (c *SubmitOfferCommand) setOfferID(offerID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}

	c.offerID = offerID
	return nil
}

func (c *SubmitOfferCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *SubmitOfferCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *SubmitOfferCommand) setPrice(price int64) error {
	if price <= 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *SubmitOfferCommand) setEstimatedHours(estimatedHours *int) error {
	if estimatedHours != nil && *estimatedHours <= 0 {
		return ErrEstimatedHoursIsInvalid
	}

	c.estimatedHours = estimatedHours
	return nil
}
