package offer

import "freightops/internal/pkg/errs"

// Status represents the settlement state of an offer.
//
// State transitions:
//
//	Pending ──> Accepted
//	   │
//	   ├──────> Rejected
//	   │
//	   └──────> Expired
//
// All three settled states are final: an offer settles exactly once.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the offer awaits the client's decision.
	Pending

	// Accepted indicates the client chose this offer. Final state.
	Accepted

	// Rejected indicates another offer on the same request won, or the
	// request was cancelled. Final state.
	Rejected

	// Expired indicates the offer aged out before settlement. Final state.
	Expired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Accepted: "Accepted",
		Rejected: "Rejected",
		Expired:  "Expired",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Accepted: "Accepted",
		Rejected: "Rejected",
		Expired:  "Expired",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("offer status")
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

// IsSettled reports whether the offer has reached a final state.
func (s Status) IsSettled() bool {
	return s == Accepted || s == Rejected || s == Expired
}

// settle returns next if the offer is still Pending, or an
// IllegalTransitionError otherwise. Every settlement goes through here.
func (s Status) settle(next Status) (Status, error) {
	if s != Pending {
		return Unknown, errs.NewIllegalTransitionError("offer", s.String(), next.String())
	}
	return next, nil
}

// Accept transitions Pending -> Accepted.
func (s Status) Accept() (Status, error) {
	return s.settle(Accepted)
}

// Reject transitions Pending -> Rejected.
func (s Status) Reject() (Status, error) {
	return s.settle(Rejected)
}

// Expire transitions Pending -> Expired.
func (s Status) Expire() (Status, error) {
	return s.settle(Expired)
}
