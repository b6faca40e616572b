package commands

import (
	"context"

	"agvsim/internal/core/state"
)

// TickCommandHandler advances the simulation one step. The whole tick is
// atomic on the aggregate: concurrent readers see the pre-tick or post-tick
// state, never a partially moved fleet.
type TickCommandHandler struct {
	aggregate *state.Aggregate
}

// NewTickCommandHandler creates a handler bound to the live aggregate.
func NewTickCommandHandler(aggregate *state.Aggregate) TickCommandHandler {
	return TickCommandHandler{
		aggregate: aggregate,
	}
}

// Handle runs one tick and returns its summary. A non-nil error means a
// state invariant was broken and the tick aborted mid-way; the error must
// surface loudly rather than be retried.
func (h *TickCommandHandler) Handle(_ context.Context, cmd TickCommand) (state.TickSummary, error) {
	if err := cmd.Validate(); err != nil {
		return state.TickSummary{}, err
	}

	return h.aggregate.Tick()
}
