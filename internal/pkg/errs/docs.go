// Package errs provides standardized error types for the freight marketplace core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - IllegalTransitionError: For state-graph violations on requests and trips
//   - StaleUpdateError: For regressive trip progress reports
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrIllegalTransition)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Validation and transition errors are reported synchronously to the caller
// and are never retried automatically: they indicate a logic bug, not a
// transient condition. Transport failures from the store are wrapped driver
// errors and are the only class eligible for caller-controlled retry.
package errs
