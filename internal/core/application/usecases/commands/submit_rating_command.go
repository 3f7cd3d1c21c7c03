package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/rating"
	"freightops/internal/pkg/guard"
)

var (
	ErrSubmitRatingCommandIsNotConstructed = errors.New(
		"SubmitRatingCommand must be created via NewSubmitRatingCommand constructor",
	)
	ErrScoreIsOutOfRange = errors.New("score must be between 1 and 5")
)

// SubmitRatingCommand represents a client rating the driver who executed
// their request.
type SubmitRatingCommand struct { //nolint:recvcheck //using for validation
	ratingID  kernel.UUID
	requestID kernel.UUID
	driverID  kernel.UUID
	clientID  kernel.UUID
	score     int
	comment   *string

	guard guard.ConstructorGuard
}

// NewSubmitRatingCommand creates a command to rate a request's driver.
// Validates identifiers and the score range.
// Returns an error if any validation fails.
func NewSubmitRatingCommand(
	ratingID kernel.UUID,
	requestID kernel.UUID,
	driverID kernel.UUID,
	clientID kernel.UUID,
	score int,
	comment *string,
) (SubmitRatingCommand, error) {
	cmd := SubmitRatingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRatingID(ratingID),
		cmd.setRequestID(requestID),
		cmd.setDriverID(driverID),
		cmd.setClientID(clientID),
		cmd.setScore(score),
	); err != nil {
		return SubmitRatingCommand{}, err
	}

	cmd.comment = comment
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitRatingCommandIsNotConstructed if validation fails.
func (c SubmitRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
}

// RatingID returns the unique identifier for the rating.
func (c SubmitRatingCommand) RatingID() kernel.UUID {
	return c.ratingID
}

// RequestID returns the identifier of the rated request.
func (c SubmitRatingCommand) RequestID() kernel.UUID {
	return c.requestID
}

// DriverID returns the rated driver's identifier.
func (c SubmitRatingCommand) DriverID() kernel.UUID {
	return c.driverID
}

// ClientID returns the rating client's identifier.
func (c SubmitRatingCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Score returns the star score, 1 to 5.
func (c SubmitRatingCommand) Score() int {
	return c.score
}

// Comment returns the free-form comment, or nil.
func (c SubmitRatingCommand) Comment() *string {
	return c.comment
}

func (c *SubmitRatingCommand) setRatingID(ratingID kernel.UUID) error {
	if err := ratingID.Validate(); err != nil {
		return err
	}

	c.ratingID = ratingID
	return nil
}

func (c *SubmitRatingCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *SubmitRatingCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *SubmitRatingCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *SubmitRatingCommand) setScore(score int) error {
	if score < rating.MinScore || score > rating.MaxScore {
		return ErrScoreIsOutOfRange
	}

	c.score = score
	return nil
}
