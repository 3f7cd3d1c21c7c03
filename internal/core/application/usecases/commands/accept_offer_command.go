package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/guard"
)

var (
	ErrAcceptOfferCommandIsNotConstructed = errors.New(
		"AcceptOfferCommand must be created via NewAcceptOfferCommand constructor",
	)
)

// AcceptOfferCommand represents a client settling a request on one offer.
type AcceptOfferCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	offerID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOfferCommand creates a command to accept the given offer on the
// given request. Returns an error if either identifier is invalid.
func NewAcceptOfferCommand(requestID kernel.UUID, offerID kernel.UUID) (AcceptOfferCommand, error) {
	cmd := AcceptOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setOfferID(offerID),
	); err != nil {
		return AcceptOfferCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOfferCommandIsNotConstructed if validation fails.
func (c AcceptOfferCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOfferCommandIsNotConstructed)
}

// RequestID returns the identifier of the request being settled.
func (c AcceptOfferCommand) RequestID() kernel.UUID {
	return c.requestID
}

// OfferID returns the identifier of the winning offer.
func (c AcceptOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

func (c *AcceptOfferCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *AcceptOfferCommand) setOfferID(offerID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}

	c.offerID = offerID
	return nil
}
