package rating

import (
	"errors"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
)

const (
	// MinScore and MaxScore bound the star scale.
	MinScore = 1
	MaxScore = 5
)

var (
	// ErrRatingIsNotConstructed is returned when a Rating instance was not
	// created through NewRating or RestoreRating.
	ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating or RestoreRating")
)

// Rating is a client's score for the driver who executed a request. There is
// at most one rating per request, enforced by the submission handler; the
// aggregate itself has no mutators beyond construction.
//
// Rating follows these invariants:
//   - Must reference a valid request, client, and driver
//   - Score lies within [1, 5]
//   - Immutable once recorded
//   - Can only be created through NewRating or RestoreRating
type Rating struct {
	id        kernel.UUID
	requestID kernel.UUID
	clientID  kernel.UUID
	driverID  kernel.UUID

	score   int
	comment *string

	createdAt time.Time

	isConstructed bool
}

// NewRating creates a rating with validation. This is the only way for
// application code to create a valid Rating.
func NewRating(
	id kernel.UUID,
	requestID kernel.UUID,
	clientID kernel.UUID,
	driverID kernel.UUID,
	score int,
	comment *string,
	createdAt time.Time,
) (*Rating, error) {
	r := &Rating{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setRequestID(requestID),
		r.setClientID(clientID),
		r.setDriverID(driverID),
		r.setScore(score),
	); err != nil {
		return nil, err
	}

	r.comment = comment
	return r, nil
}

// RestoreRating reconstructs a rating from persistence. Identical to
// NewRating since ratings carry no lifecycle state.
func RestoreRating(
	id kernel.UUID,
	requestID kernel.UUID,
	clientID kernel.UUID,
	driverID kernel.UUID,
	score int,
	comment *string,
	createdAt time.Time,
) (*Rating, error) {
	return NewRating(id, requestID, clientID, driverID, score, comment, createdAt)
}

// Validate ensures the Rating instance was properly constructed.
func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}
	return nil
}

// IsEqual compares two ratings by their unique identifiers.
func (r *Rating) IsEqual(other *Rating) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rating's unique identifier.
func (r *Rating) ID() kernel.UUID {
	return r.id
}

// RequestID returns the identifier of the rated request.
func (r *Rating) RequestID() kernel.UUID {
	return r.requestID
}

// ClientID returns the rating client's identifier.
func (r *Rating) ClientID() kernel.UUID {
	return r.clientID
}

// DriverID returns the rated driver's identifier.
func (r *Rating) DriverID() kernel.UUID {
	return r.driverID
}

// Score returns the star score, 1 to 5.
func (r *Rating) Score() int {
	return r.score
}

// Comment returns the free-form comment, or nil.
func (r *Rating) Comment() *string {
	return r.comment
}

// CreatedAt returns when the rating was recorded.
func (r *Rating) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Rating) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rating) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	r.requestID = requestID
	return nil
}

func (r *Rating) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	r.clientID = clientID
	return nil
}

func (r *Rating) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	r.driverID = driverID
	return nil
}

func (r *Rating) setScore(score int) error {
	if score < MinScore || score > MaxScore {
		return errs.NewValueIsOutOfRangeError("score", score, MinScore, MaxScore)
	}
	r.score = score
	return nil
}
