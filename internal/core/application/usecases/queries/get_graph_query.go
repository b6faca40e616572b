// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers are pure projections over the state aggregate: cheap,
// side-effect free, and safe to poll.
package queries

import (
	"errors"

	"agvsim/internal/pkg/guard"
)

var ErrGetGraphQueryIsNotConstructed = errors.New(
	"GetGraphQuery must be created via NewGetGraphQuery constructor",
)

// GetGraphQuery retrieves the currently loaded graph.
type GetGraphQuery struct {
	guard guard.ConstructorGuard
}

// NewGetGraphQuery creates a parameterless graph query.
func NewGetGraphQuery() GetGraphQuery {
	return GetGraphQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetGraphQueryIsNotConstructed if validation fails.
func (q GetGraphQuery) Validate() error {
	return q.guard.Validate(ErrGetGraphQueryIsNotConstructed)
}

// EdgeResponse is one undirected edge in the graph read model.
type EdgeResponse struct {
	From   string
	To     string
	Weight float64
}

// GetGraphQueryResponse is the graph read model: declared node ids and the
// edges between them, in declaration order.
type GetGraphQueryResponse struct {
	Nodes []string
	Edges []EdgeResponse
}
