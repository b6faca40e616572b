package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the root cause for the structured error types below.
// Callers classify failures with errors.Is against these values.
var (
	// ErrObjectNotFound is the root error for lookups of missing objects,
	// including graph nodes referenced by orders and robots.
	ErrObjectNotFound = errors.New("object not found")

	// ErrDuplicateName is the root error for uniqueness violations on
	// name-keyed registries.
	ErrDuplicateName = errors.New("name already exists")

	// ErrValueIsInvalid is the root error for values that fail domain validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange is the root error for values outside an allowed range.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrValueIsRequired is the root error for missing required values.
	ErrValueIsRequired = errors.New("value is required")

	// ErrInvariantViolation is the root error for broken internal invariants.
	// Unlike the validation errors above it signals a programming defect:
	// the operation that detected it must abort loudly instead of producing
	// a plausible-looking but wrong state.
	ErrInvariantViolation = errors.New("invariant violation")
)

// sanitize strips newline characters from values interpolated into error
// messages so a single log line cannot be split by attacker-controlled input.
func sanitize(v any) string {
	s := fmt.Sprintf("%s", v)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ObjectNotFoundError reports that an object referenced by the caller does not
// exist. ParamName names the kind of object (for example "node" or "order"),
// ID identifies the missing instance.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a storage driver error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// DuplicateNameError reports a violated uniqueness constraint on a name-keyed
// registry. ParamName names the registry kind ("robot", "order"), Name is the
// offending name. Registries reject duplicates instead of overwriting.
type DuplicateNameError struct {
	ParamName string
	Name      string
	Cause     error
}

// NewDuplicateNameError creates a DuplicateNameError without an underlying cause.
func NewDuplicateNameError(paramName string, name string) *DuplicateNameError {
	return &DuplicateNameError{ParamName: paramName, Name: name}
}

// NewDuplicateNameErrorWithCause creates a DuplicateNameError wrapping an
// underlying cause.
func NewDuplicateNameErrorWithCause(paramName string, name string, cause error) *DuplicateNameError {
	return &DuplicateNameError{ParamName: paramName, Name: name, Cause: cause}
}

func (e *DuplicateNameError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %q (cause: %s)", ErrDuplicateName, e.ParamName, sanitize(e.Name), e.Cause)
	}
	return fmt.Sprintf("%s: %s %q", ErrDuplicateName, e.ParamName, sanitize(e.Name))
}

func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}

// ValueIsInvalidError reports a value that failed domain validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause that explains why the value was rejected.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside its allowed range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value any, minValue any, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, sanitize(fmt.Sprintf("%v", e.Value)), e.ParamName, e.Min, e.Max, e.Cause)
	}
	return fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(fmt.Sprintf("%v", e.Value)), e.ParamName, e.Min, e.Max)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvariantViolationError reports a broken internal invariant, for example a
// robot marked EXECUTING whose route is empty. It is never caused by caller
// input and is not recoverable by the caller.
type InvariantViolationError struct {
	Message string
	Cause   error
}

// NewInvariantViolationError creates an InvariantViolationError without an underlying cause.
func NewInvariantViolationError(message string) *InvariantViolationError {
	return &InvariantViolationError{Message: message}
}

// NewInvariantViolationErrorWithCause creates an InvariantViolationError
// wrapping an underlying cause.
func NewInvariantViolationErrorWithCause(message string, cause error) *InvariantViolationError {
	return &InvariantViolationError{Message: message, Cause: cause}
}

func (e *InvariantViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvariantViolation, sanitize(e.Message), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvariantViolation, sanitize(e.Message))
}

func (e *InvariantViolationError) Unwrap() error {
	return ErrInvariantViolation
}
