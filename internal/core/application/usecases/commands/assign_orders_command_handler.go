package commands

import (
	"context"

	"agvsim/internal/core/state"
)

// AssignOrdersCommandHandler runs the batch scheduling pass: every NEW order
// in ascending name order gets one dispatch attempt, and a robot assigned
// earlier in the pass is never offered to a later order.
type AssignOrdersCommandHandler struct {
	aggregate *state.Aggregate
}

// NewAssignOrdersCommandHandler creates a handler bound to the live aggregate.
func NewAssignOrdersCommandHandler(aggregate *state.Aggregate) AssignOrdersCommandHandler {
	return AssignOrdersCommandHandler{
		aggregate: aggregate,
	}
}

// Handle runs one pass and returns the assignments it made. An empty result
// with a nil error means no order could be scheduled right now.
func (h *AssignOrdersCommandHandler) Handle(_ context.Context, cmd AssignOrdersCommand) ([]state.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.aggregate.AssignPendingOrders()
}
