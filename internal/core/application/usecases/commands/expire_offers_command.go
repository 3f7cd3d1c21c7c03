package commands

import (
	"errors"
	"time"

	"freightops/internal/pkg/guard"
)

var (
	ErrExpireOffersCommandIsNotConstructed = errors.New(
		"ExpireOffersCommand must be created via NewExpireOffersCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff is required")
)

// ExpireOffersCommand represents the periodic sweep that settles pending
// offers submitted before the cutoff as Expired.
type ExpireOffersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewExpireOffersCommand creates a command to expire pending offers older
// than the cutoff. Returns an error if the cutoff is the zero time.
func NewExpireOffersCommand(cutoff time.Time) (ExpireOffersCommand, error) {
	cmd := ExpireOffersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCutoff(cutoff); err != nil {
		return ExpireOffersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireOffersCommandIsNotConstructed if validation fails.
func (c ExpireOffersCommand) Validate() error {
	return c.guard.Validate(ErrExpireOffersCommandIsNotConstructed)
}

// Cutoff returns the submission time before which pending offers expire.
func (c ExpireOffersCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *ExpireOffersCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.cutoff = cutoff
	return nil
}
