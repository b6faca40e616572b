package graph

import (
	"errors"
	"fmt"
	"math"

	"agvsim/internal/pkg/errs"

	"agvsim/internal/pkg/guard"
)

// ErrEdgeIsNotConstructed is returned when using an Edge that was not created
// via the NewEdge constructor.
var ErrEdgeIsNotConstructed = errors.New("Edge must be created via NewEdge constructor")

// Edge is a bidirectional weighted relation between two nodes. It is a single
// undirected relation: traversable in either direction at the same weight,
// never modeled as two independently-weighted directed edges.
//
// Edge is an immutable value object. The zero value is invalid; use NewEdge.
type Edge struct { //nolint:recvcheck //using for validation
	from   string
	to     string
	weight float64

	guard guard.ConstructorGuard
}

// NewEdge creates a validated Edge.
//
// Validation rules:
//   - both endpoints must be non-empty node ids
//   - endpoints must differ (self-loops carry no routing information)
//   - weight must be positive and finite
//
// Endpoint existence against a particular graph is checked later by
// NewGraphIndex, since an Edge value alone has no graph to check against.
func NewEdge(from string, to string, weight float64) (Edge, error) {
	edge := Edge{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		edge.setFrom(from),
		edge.setTo(to),
		edge.setWeight(weight),
	); err != nil {
		return Edge{}, err
	}

	if edge.from == edge.to {
		return Edge{}, errs.NewValueIsInvalidErrorWithCause(
			"edge", fmt.Errorf("self-loop on node %q", from))
	}

	return edge, nil
}

// Validate checks that the Edge was created via NewEdge.
func (e Edge) Validate() error {
	return e.guard.Validate(ErrEdgeIsNotConstructed)
}

// From returns the first endpoint as declared by the caller.
func (e Edge) From() string {
	return e.from
}

// To returns the second endpoint as declared by the caller.
func (e Edge) To() string {
	return e.to
}

// Weight returns the traversal cost, identical in both directions.
func (e Edge) Weight() float64 {
	return e.weight
}

// Connects reports whether the edge joins nodes a and b, in either order.
func (e Edge) Connects(a string, b string) bool {
	return (e.from == a && e.to == b) || (e.from == b && e.to == a)
}

// String returns a human-readable representation, e.g. "A-B(1.5)".
func (e Edge) String() string {
	return fmt.Sprintf("%s-%s(%g)", e.from, e.to, e.weight)
}

func (e *Edge) setFrom(from string) error {
	if from == "" {
		return errs.NewValueIsRequiredError("from")
	}
	e.from = from
	return nil
}

func (e *Edge) setTo(to string) error {
	if to == "" {
		return errs.NewValueIsRequiredError("to")
	}
	e.to = to
	return nil
}

func (e *Edge) setWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v is not a finite number", weight))
	}
	if weight <= 0 {
		return errs.NewValueIsOutOfRangeError("weight", weight, 0, math.MaxFloat64)
	}

	e.weight = weight
	return nil
}
