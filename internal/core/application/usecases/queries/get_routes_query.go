package queries

import (
	"errors"

	"agvsim/internal/pkg/guard"
)

var ErrGetRoutesQueryIsNotConstructed = errors.New(
	"GetRoutesQuery must be created via NewGetRoutesQuery constructor",
)

// GetRoutesQuery retrieves the remaining planned route of every executing
// robot. Visualization clients poll this to draw robots' paths.
type GetRoutesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRoutesQuery creates a parameterless routes query.
func NewGetRoutesQuery() GetRoutesQuery {
	return GetRoutesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRoutesQueryIsNotConstructed if validation fails.
func (q GetRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutesQueryIsNotConstructed)
}

// GetRoutesQueryResponse is one executing robot's planned path, starting at
// the robot's current node and ending at its order's target.
type GetRoutesQueryResponse struct {
	Robot string
	Order string
	Path  []string
}
