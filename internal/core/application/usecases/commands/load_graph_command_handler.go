package commands

import (
	"context"

	"agvsim/internal/core/state"
)

// LoadGraphCommandHandler handles graph (re)initialization. On success the
// aggregate holds the new graph, empty registries and a fresh session id;
// on failure the previous state is untouched.
type LoadGraphCommandHandler struct {
	aggregate *state.Aggregate
}

// NewLoadGraphCommandHandler creates a handler bound to the live aggregate.
func NewLoadGraphCommandHandler(aggregate *state.Aggregate) LoadGraphCommandHandler {
	return LoadGraphCommandHandler{
		aggregate: aggregate,
	}
}

// Handle processes the graph load command.
func (h *LoadGraphCommandHandler) Handle(_ context.Context, cmd LoadGraphCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.aggregate.LoadGraph(cmd.Nodes(), cmd.Edges())
	return err
}
