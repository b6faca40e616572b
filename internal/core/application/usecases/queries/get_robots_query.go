package queries

import (
	"errors"

	"agvsim/internal/core/domain/model/robot"
	"agvsim/internal/pkg/guard"
)

var ErrGetRobotsQueryIsNotConstructed = errors.New(
	"GetRobotsQuery must be created via NewGetRobotsQuery constructor",
)

// GetRobotsQuery retrieves every registered robot, sorted by name.
type GetRobotsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRobotsQuery creates a parameterless robots query.
func NewGetRobotsQuery() GetRobotsQuery {
	return GetRobotsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRobotsQueryIsNotConstructed if validation fails.
func (q GetRobotsQuery) Validate() error {
	return q.guard.Validate(ErrGetRobotsQueryIsNotConstructed)
}

// GetRobotsQueryResponse is one robot in the read model.
type GetRobotsQueryResponse struct {
	Name   string
	Status robot.Status
	Node   string
}
