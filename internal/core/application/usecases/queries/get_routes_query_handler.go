package queries

import (
	"context"

	"agvsim/internal/core/state"
)

// GetRoutesQueryHandler projects the remaining route of every executing
// robot. Idle robots carry no route and are omitted.
type GetRoutesQueryHandler struct {
	aggregate *state.Aggregate
}

// NewGetRoutesQueryHandler creates a handler bound to the live aggregate.
func NewGetRoutesQueryHandler(aggregate *state.Aggregate) GetRoutesQueryHandler {
	return GetRoutesQueryHandler{aggregate: aggregate}
}

// Handle returns, per executing robot sorted by name, the not-yet-traversed
// part of its route starting at the robot's current node.
func (h GetRoutesQueryHandler) Handle(_ context.Context, query GetRoutesQuery) ([]GetRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snap, err := h.aggregate.Snapshot()
	if err != nil {
		return nil, err
	}

	routes := make([]GetRoutesQueryResponse, 0)
	for _, r := range snap.Robots {
		if r.IsIdle() {
			continue
		}
		routes = append(routes, GetRoutesQueryResponse{
			Robot: r.Name(),
			Order: r.AssignedOrder(),
			Path:  r.Route()[r.RouteCursor():],
		})
	}

	return routes, nil
}
