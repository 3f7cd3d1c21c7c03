package request

import "freightops/internal/pkg/errs"

// Status represents the lifecycle state of a transport request.
// It implements a state machine with defined transitions so requests follow
// the marketplace workflow and never regress to an earlier state.
//
// State transitions:
//
//	Pending ──> OffersReceived ──> Accepted ──> InProgress ──> Completed
//	   │              │                │
//	   └──────────────┴────────────────┴──> Cancelled
//
// Pending→OffersReceived fires when the first offer is recorded,
// Accepted→InProgress when the trip leaves its initial state, and
// InProgress→Completed when the trip completes. Cancellation is only
// possible before the trip starts moving.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the request is posted and no driver
	// has bid on it yet.
	Pending

	// OffersReceived indicates at least one offer exists for the request.
	OffersReceived

	// Accepted indicates the client accepted exactly one offer; a trip and
	// an invoice exist from this point on.
	Accepted

	// InProgress indicates the assigned trip has started moving.
	InProgress

	// Completed indicates the trip finished. Final state.
	Completed

	// Cancelled indicates the client withdrew the request before the trip
	// started. Final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		OffersReceived: "OffersReceived",
		Accepted:       "Accepted",
		InProgress:     "InProgress",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		OffersReceived: "OffersReceived",
		Accepted:       "Accepted",
		InProgress:     "InProgress",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
	}
}

// successors is the closed transition table of the request state graph.
// Every transition method below consults it; there is no other place in the
// codebase that decides request status legality.
func successors() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {OffersReceived, Cancelled},
		OffersReceived: {Accepted, Cancelled},
		Accepted:       {InProgress, Cancelled},
		InProgress:     {Completed},
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("request status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a wire value into a Status.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("request status")
}

// IsTerminal reports whether no further transition can leave this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether moving to next is legal from s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range successors()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// transitionTo returns next if the move is legal, or an
// IllegalTransitionError naming both states otherwise.
func (s Status) transitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewIllegalTransitionError("request", s.String(), next.String())
	}
	return next, nil
}

// ReceiveOffers transitions Pending -> OffersReceived.
// Fired by the offer-submission reaction when the first offer is recorded,
// never by a direct client command.
func (s Status) ReceiveOffers() (Status, error) {
	return s.transitionTo(OffersReceived)
}

// Accept transitions Pending/OffersReceived -> Accepted.
// Accepting straight from Pending is impossible in practice (there is no
// offer to accept yet) but the graph allows the orchestrator to rely on a
// single rule: a request is acceptable while no offer has been settled.
func (s Status) Accept() (Status, error) {
	if s != Pending && s != OffersReceived {
		return Unknown, errs.NewIllegalTransitionError("request", s.String(), Accepted.String())
	}
	return Accepted, nil
}

// Start transitions Accepted -> InProgress. Fired when the trip first moves.
func (s Status) Start() (Status, error) {
	return s.transitionTo(InProgress)
}

// Complete transitions InProgress -> Completed. Fired when the trip completes.
func (s Status) Complete() (Status, error) {
	return s.transitionTo(Completed)
}

// Cancel transitions Pending/OffersReceived/Accepted -> Cancelled.
func (s Status) Cancel() (Status, error) {
	return s.transitionTo(Cancelled)
}
