package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/request"
	"freightops/internal/pkg/guard"
)

var (
	ErrSubmitRequestCommandIsNotConstructed = errors.New(
		"SubmitRequestCommand must be created via NewSubmitRequestCommand constructor",
	)
	ErrOriginIsRequired      = errors.New("origin is required")
	ErrDestinationIsRequired = errors.New("destination is required")
	ErrTrucksCountIsInvalid  = errors.New("trucks count must be greater than 0")
)

// SubmitRequestCommand represents a client posting a new transport request.
// Encapsulates the route, vehicle requirements, and optional constraints.
type SubmitRequestCommand struct { //nolint:recvcheck //using for validation
	requestID   kernel.UUID
	clientID    kernel.UUID
	origin      string
	destination string
	truckType   request.TruckType
	trucksCount int

	minManufacturingYear *int
	notes                *string

	guard guard.ConstructorGuard
}

// NewSubmitRequestCommand creates a command to post a new transport request.
// Validates identifiers, the route endpoints, the truck type, and the count.
// Returns an error if any validation fails.
func NewSubmitRequestCommand(
	requestID kernel.UUID,
	clientID kernel.UUID,
	origin string,
	destination string,
	truckType request.TruckType,
	trucksCount int,
	minManufacturingYear *int,
	notes *string,
) (SubmitRequestCommand, error) {
	cmd := SubmitRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setClientID(clientID),
		cmd.setOrigin(origin),
		cmd.setDestination(destination),
		cmd.setTruckType(truckType),
		cmd.setTrucksCount(trucksCount),
	); err != nil {
		return SubmitRequestCommand{}, err
	}

	cmd.minManufacturingYear = minManufacturingYear
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitRequestCommandIsNotConstructed if validation fails.
func (c SubmitRequestCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRequestCommandIsNotConstructed)
}

// RequestID returns the unique identifier for the request.
func (c SubmitRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ClientID returns the posting client's identifier.
func (c SubmitRequestCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Origin returns the pickup place name.
func (c SubmitRequestCommand) Origin() string {
	return c.origin
}

// Destination returns the delivery place name.
func (c SubmitRequestCommand) Destination() string {
	return c.destination
}

// TruckType returns the requested vehicle class.
func (c SubmitRequestCommand) TruckType() request.TruckType {
	return c.truckType
}

// TrucksCount returns how many vehicles the job needs.
func (c SubmitRequestCommand) TrucksCount() int {
	return c.trucksCount
}

// MinManufacturingYear returns the oldest acceptable vehicle year, or nil.
func (c SubmitRequestCommand) MinManufacturingYear() *int {
	return c.minManufacturingYear
}

// Notes returns the free-form client notes, or nil.
func (c SubmitRequestCommand) Notes() *string {
	return c.notes
}

func (c *SubmitRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *SubmitRequestCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *SubmitRequestCommand) setOrigin(origin string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}

	c.origin = origin
	return nil
}

func (c *SubmitRequestCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}

func (c *SubmitRequestCommand) setTruckType(truckType request.TruckType) error {
	if err := truckType.Validate(); err != nil {
		return err
	}

	c.truckType = truckType
	return nil
}

func (c *SubmitRequestCommand) setTrucksCount(trucksCount int) error {
	if trucksCount <= 0 {
		return ErrTrucksCountIsInvalid
	}

	c.trucksCount = trucksCount
	return nil
}
