package order

import (
	"fmt"

	"agvsim/internal/pkg/errs"
)

// Status is the lifecycle state of an order. It is string-backed so the
// domain value and the wire value consumed by the external client are the
// same.
//
// State transitions:
//
//	NEW ──Assign──> IN_PROGRESS ──Complete──> DONE
//	 │                   │
//	 └──────Fail─────────┴──Fail──> FAILED
//
// DONE and FAILED are terminal.
type Status string

const (
	// StatusNew is the initial state; the order waits for a robot.
	StatusNew Status = "NEW"

	// StatusInProgress marks an order being executed by its assigned robot.
	StatusInProgress Status = "IN_PROGRESS"

	// StatusDone marks a delivered order. Terminal.
	StatusDone Status = "DONE"

	// StatusFailed marks an explicitly cancelled order. Terminal. The
	// scheduling and tick paths never produce it.
	StatusFailed Status = "FAILED"
)

// Validate checks that the Status holds one of the defined values.
func (s Status) Validate() error {
	switch s {
	case StatusNew, StatusInProgress, StatusDone, StatusFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"order status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusFailed
}

// Assign transitions the status to IN_PROGRESS. Only NEW orders are
// assignable — scheduling never reassigns an order in flight.
func (s Status) Assign() (Status, error) {
	if s != StatusNew {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"order status", fmt.Errorf("%s is not a valid status to assign", s))
	}
	return StatusInProgress, nil
}

// Complete transitions the status to DONE. Only IN_PROGRESS orders complete.
func (s Status) Complete() (Status, error) {
	if s != StatusInProgress {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"order status", fmt.Errorf("%s is not a valid status to complete", s))
	}
	return StatusDone, nil
}

// Fail transitions the status to FAILED. Cancellation applies to orders that
// are not yet terminal.
func (s Status) Fail() (Status, error) {
	if s.IsTerminal() {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"order status", fmt.Errorf("%s is not a valid status to fail", s))
	}
	return StatusFailed, nil
}

// ValidateCanHaveRobot validates consistency between status and robot
// assignment: exactly the IN_PROGRESS state carries a robot.
func (s Status) ValidateCanHaveRobot(hasRobot bool) error {
	if hasRobot && s != StatusInProgress {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status", fmt.Errorf("%s is not a valid status to have a robot", s))
	}
	if !hasRobot && s == StatusInProgress {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status", fmt.Errorf("%s requires an assigned robot", s))
	}
	return nil
}
