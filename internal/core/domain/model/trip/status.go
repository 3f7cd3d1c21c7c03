package trip

import "freightops/internal/pkg/errs"

// Status represents the milestone a trip has reached.
//
// State transitions:
//
//	Assigned ─> EnRoutePickup ─> AtPickup ─> Loaded ─> InTransit ─> AtDelivery ─> Completed
//	    │             │              │          │           │            │
//	    └─────────────┴──────────────┴──────────┴───────────┴────────────┴─> Cancelled
//
// The chain is strict: milestones advance one step at a time and never skip
// or regress. Cancelled is reachable from every non-terminal milestone.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Assigned is the initial status: the trip exists but the driver has not
	// started moving.
	Assigned

	// EnRoutePickup indicates the driver is heading to the pickup point.
	EnRoutePickup

	// AtPickup indicates the driver arrived at the pickup point.
	AtPickup

	// Loaded indicates the cargo is on board.
	Loaded

	// InTransit indicates the trip is underway towards the destination.
	InTransit

	// AtDelivery indicates the driver arrived at the delivery point.
	AtDelivery

	// Completed indicates the cargo was delivered. Final state.
	Completed

	// Cancelled indicates the trip was abandoned before delivery. Final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Assigned:      "Assigned",
		EnRoutePickup: "EnRoutePickup",
		AtPickup:      "AtPickup",
		Loaded:        "Loaded",
		InTransit:     "InTransit",
		AtDelivery:    "AtDelivery",
		Completed:     "Completed",
		Cancelled:     "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Assigned:      "Assigned",
		EnRoutePickup: "EnRoutePickup",
		AtPickup:      "AtPickup",
		Loaded:        "Loaded",
		InTransit:     "InTransit",
		AtDelivery:    "AtDelivery",
		Completed:     "Completed",
		Cancelled:     "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("trip status")
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
	return Unknown, errs.NewValueIsInvalidError("trip status")
}

// IsTerminal reports whether no further transition can leave this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Next returns the sole legal milestone after s in the delivery chain.
// Terminal and invalid statuses have no successor.
func (s Status) Next() (Status, bool) {
	if s < Assigned || s >= Completed {
		return Unknown, false
	}
	return s + 1, true
}

// Advance transitions to the next milestone in the chain. Skipping ahead or
// advancing a terminal trip is illegal.
func (s Status) Advance() (Status, error) {
	next, ok := s.Next()
	if !ok {
		return Unknown, errs.NewIllegalTransitionError("trip", s.String(), "next milestone")
	}
	return next, nil
}

// AdvanceTo transitions to next only when next is the immediate successor of
// s. Cancellation must go through Cancel, not AdvanceTo.
func (s Status) AdvanceTo(next Status) (Status, error) {
	successor, ok := s.Next()
	if !ok || successor != next {
		return Unknown, errs.NewIllegalTransitionError("trip", s.String(), next.String())
	}
	return next, nil
}

// Cancel transitions any non-terminal status -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil || s.IsTerminal() {
		return Unknown, errs.NewIllegalTransitionError("trip", s.String(), Cancelled.String())
	}
	return Cancelled, nil
}
