package robot

import (
	"fmt"

	"agvsim/internal/pkg/errs"
)

// Status is the lifecycle state of a robot. It is string-backed so the domain
// value and the wire value consumed by the external client are the same.
//
// State transitions:
//
//	IDLE ──AssignRoute──> EXECUTING ──CompleteAssignment──> IDLE
type Status string

const (
	// StatusIdle marks a robot with no route and no assigned order,
	// available to the scheduler.
	StatusIdle Status = "IDLE"

	// StatusExecuting marks a robot advancing along its route toward its
	// assigned order's target.
	StatusExecuting Status = "EXECUTING"
)

// Validate checks that the Status holds one of the defined values. Statuses
// arriving from external sources (persistence, API) are validated before use.
func (s Status) Validate() error {
	switch s {
	case StatusIdle, StatusExecuting:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"robot status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ValidateConsistency enforces the aggregate invariant between status, route
// and assignment: EXECUTING requires both a route and an assigned order, IDLE
// requires neither.
func (s Status) ValidateConsistency(hasRoute bool, hasOrder bool) error {
	switch s {
	case StatusExecuting:
		if !hasRoute || !hasOrder {
			return errs.NewValueIsInvalidErrorWithCause(
				"robot status",
				fmt.Errorf("EXECUTING requires a route and an assigned order (route=%t, order=%t)",
					hasRoute, hasOrder))
		}
	case StatusIdle:
		if hasRoute || hasOrder {
			return errs.NewValueIsInvalidErrorWithCause(
				"robot status",
				fmt.Errorf("IDLE allows neither route nor assigned order (route=%t, order=%t)",
					hasRoute, hasOrder))
		}
	}
	return nil
}
