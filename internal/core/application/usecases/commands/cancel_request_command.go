package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/guard"
)

var (
	ErrCancelRequestCommandIsNotConstructed = errors.New(
		"CancelRequestCommand must be created via NewCancelRequestCommand constructor",
	)
)

// CancelRequestCommand represents a client withdrawing a transport request.
type CancelRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelRequestCommand creates a command to withdraw the given request.
// Returns an error if the identifier is invalid.
func NewCancelRequestCommand(requestID kernel.UUID) (CancelRequestCommand, error) {
	cmd := CancelRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRequestID(requestID); err != nil {
		return CancelRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelRequestCommandIsNotConstructed if validation fails.
func (c CancelRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelRequestCommandIsNotConstructed)
}

// RequestID returns the identifier of the request being withdrawn.
func (c CancelRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *CancelRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
