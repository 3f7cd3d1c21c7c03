package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the roots of the error taxonomy.
// Wrapped errors expose these via Unwrap so callers can classify
// failures with errors.Is without inspecting messages.
var (
	ErrObjectNotFound        = errors.New("object not found")
	ErrValueIsInvalid        = errors.New("value is invalid")
	ErrValueIsOutOfRange     = errors.New("value is out of range")
	ErrValueIsRequired       = errors.New("value is required")
	ErrIllegalTransition     = errors.New("illegal state transition")
	ErrStaleUpdate           = errors.New("stale update")
	ErrConflictingAcceptance = errors.New("conflicting acceptance")
	ErrStoreUnavailable      = errors.New("store unavailable")
)

// sanitize flattens multi-line values so a single log line stays a single line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError is returned when a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a numeric value falls outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// IllegalTransitionError is returned when a state machine is asked to move
// to a status that is not a legal successor of its current one. It names
// both states so the caller can see exactly which rule was violated.
// Callers must not retry: an illegal transition is a logic error, not a
// transient condition.
type IllegalTransitionError struct {
	Entity string
	From   string
	To     string
}

// NewIllegalTransitionError creates an IllegalTransitionError for the given
// entity kind and attempted transition.
func NewIllegalTransitionError(entity, from, to string) *IllegalTransitionError {
	return &IllegalTransitionError{Entity: entity, From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s", ErrIllegalTransition, e.Entity, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// StaleUpdateError is returned when a progress report would move a trip
// backward, either in status or in progress percent. The update is dropped,
// never merged.
type StaleUpdateError struct {
	Entity string
	Detail string
}

// NewStaleUpdateError creates a StaleUpdateError with a human-readable detail.
func NewStaleUpdateError(entity, detail string) *StaleUpdateError {
	return &StaleUpdateError{Entity: entity, Detail: detail}
}

func (e *StaleUpdateError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrStaleUpdate, e.Entity, e.Detail)
}

func (e *StaleUpdateError) Unwrap() error {
	return ErrStaleUpdate
}

// ConflictingAcceptanceError is returned to the loser of an acceptance race:
// the request was settled on another offer while this acceptance was in
// flight. Retrying cannot succeed.
type ConflictingAcceptanceError struct {
	RequestID string
}

// NewConflictingAcceptanceError creates a ConflictingAcceptanceError for the
// contested request.
func NewConflictingAcceptanceError(requestID string) *ConflictingAcceptanceError {
	return &ConflictingAcceptanceError{RequestID: requestID}
}

func (e *ConflictingAcceptanceError) Error() string {
	return fmt.Sprintf("%s: request %s was already settled on another offer", ErrConflictingAcceptance, e.RequestID)
}

func (e *ConflictingAcceptanceError) Unwrap() error {
	return ErrConflictingAcceptance
}

// StoreUnavailableError is returned when the data store cannot be reached or
// a transaction fails for infrastructure reasons. This is the only retryable
// class in the taxonomy.
type StoreUnavailableError struct {
	Cause error
}

// NewStoreUnavailableError wraps an infrastructure failure.
func NewStoreUnavailableError(cause error) *StoreUnavailableError {
	return &StoreUnavailableError{Cause: cause}
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("%s (cause: %v)", ErrStoreUnavailable, e.Cause)
}

func (e *StoreUnavailableError) Unwrap() error {
	return ErrStoreUnavailable
}
