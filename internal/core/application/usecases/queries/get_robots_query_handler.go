package queries

import (
	"context"

	"agvsim/internal/core/state"
)

// GetRobotsQueryHandler projects the robot registry into its read model.
type GetRobotsQueryHandler struct {
	aggregate *state.Aggregate
}

// NewGetRobotsQueryHandler creates a handler bound to the live aggregate.
func NewGetRobotsQueryHandler(aggregate *state.Aggregate) GetRobotsQueryHandler {
	return GetRobotsQueryHandler{aggregate: aggregate}
}

// Handle returns every robot sorted by name.
func (h GetRobotsQueryHandler) Handle(_ context.Context, query GetRobotsQuery) ([]GetRobotsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snap, err := h.aggregate.Snapshot()
	if err != nil {
		return nil, err
	}

	robots := make([]GetRobotsQueryResponse, 0, len(snap.Robots))
	for _, r := range snap.Robots {
		robots = append(robots, GetRobotsQueryResponse{
			Name:   r.Name(),
			Status: r.Status(),
			Node:   r.Node(),
		})
	}

	return robots, nil
}
