// Package errs provides standardized error types for the AGV fleet core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the application.
//
// The taxonomy has two halves:
//
//   - Validation errors (ObjectNotFoundError, DuplicateNameError,
//     ValueIsInvalidError, ValueIsOutOfRangeError, ValueIsRequiredError):
//     caller-input faults. They are surfaced to the boundary layer as
//     rejectable requests and never leave state modified.
//   - InvariantViolationError: an internal defect such as an executing robot
//     with an empty route. Operations that detect one abort loudly.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Note that "no path exists" and "no eligible robot" are deliberately not in
// this package: those are legitimate domain outcomes, reported as sentinel
// values by the graph and services packages, not faults.
package errs
