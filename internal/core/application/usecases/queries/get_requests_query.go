package queries

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/request"
	"freightops/internal/pkg/guard"
)

var (
	ErrGetRequestsQueryIsNotConstructed = errors.New(
		"GetRequestsQuery must be created via NewGetRequestsQuery constructor",
	)
)

// GetRequestsQuery retrieves cached transport requests, optionally filtered
// by lifecycle status and by the client who posted them.
type GetRequestsQuery struct {
	status   *request.Status
	clientID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRequestsQuery creates a query for all requests.
func NewGetRequestsQuery() GetRequestsQuery {
	return GetRequestsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetRequestsByStatusQuery creates a query for requests in one status.
// Returns an error if the status is invalid.
func NewGetRequestsByStatusQuery(status request.Status) (GetRequestsQuery, error) {
	if err := status.Validate(); err != nil {
		return GetRequestsQuery{}, err
	}

	return GetRequestsQuery{
		status: &status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetRequestsQueryIsNotConstructed if validation fails.
func (q GetRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestsQueryIsNotConstructed)
}

// FilteredByClient returns a copy of the query narrowed to the requests one
// client posted. Returns an error if the client id is invalid.
func (q GetRequestsQuery) FilteredByClient(clientID kernel.UUID) (GetRequestsQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetRequestsQuery{}, err
	}

	q.clientID = &clientID
	return q, nil
}

// Status returns the status filter, or nil for no filtering.
func (q GetRequestsQuery) Status() *request.Status {
	return q.status
}

// ClientID returns the client filter, or nil for no filtering.
func (q GetRequestsQuery) ClientID() *kernel.UUID {
	return q.clientID
}
