package queries

import (
	"context"

	"agvsim/internal/core/state"
)

// GetGraphQueryHandler projects the loaded graph into its read model.
type GetGraphQueryHandler struct {
	aggregate *state.Aggregate
}

// NewGetGraphQueryHandler creates a handler bound to the live aggregate.
func NewGetGraphQueryHandler(aggregate *state.Aggregate) GetGraphQueryHandler {
	return GetGraphQueryHandler{aggregate: aggregate}
}

// Handle returns the graph read model. Fails with state.ErrGraphNotLoaded
// before the first loadGraph call.
func (h GetGraphQueryHandler) Handle(_ context.Context, query GetGraphQuery) (GetGraphQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetGraphQueryResponse{}, err
	}

	snap, err := h.aggregate.Snapshot()
	if err != nil {
		return GetGraphQueryResponse{}, err
	}

	response := GetGraphQueryResponse{
		Nodes: snap.Graph.Nodes(),
		Edges: make([]EdgeResponse, 0, len(snap.Graph.Edges())),
	}
	for _, e := range snap.Graph.Edges() {
		response.Edges = append(response.Edges, EdgeResponse{
			From:   e.From(),
			To:     e.To(),
			Weight: e.Weight(),
		})
	}

	return response, nil
}
