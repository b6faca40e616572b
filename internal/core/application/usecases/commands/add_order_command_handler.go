package commands

import (
	"context"
	"errors"

	"agvsim/internal/core/domain/model/order"
	"agvsim/internal/core/domain/services"
	"agvsim/internal/core/state"
)

// AddOrderCommandHandler registers new orders and immediately attempts to
// schedule each one onto the nearest idle robot. A "no eligible robot"
// outcome is not a failure: the order stays NEW and the periodic assignment
// job retries it once a robot frees up.
type AddOrderCommandHandler struct {
	aggregate *state.Aggregate
}

// NewAddOrderCommandHandler creates a handler bound to the live aggregate.
func NewAddOrderCommandHandler(aggregate *state.Aggregate) AddOrderCommandHandler {
	return AddOrderCommandHandler{
		aggregate: aggregate,
	}
}

// Handle processes the order creation command and returns the created order,
// reflecting the scheduling attempt: IN_PROGRESS when a robot took it, NEW
// when none could.
func (h *AddOrderCommandHandler) Handle(_ context.Context, cmd AddOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := h.aggregate.AddOrder(cmd.Name(), cmd.Source(), cmd.Target())
	if err != nil {
		return nil, err
	}

	if _, err = h.aggregate.AssignOrder(created.Name()); err != nil {
		if errors.Is(err, services.ErrNoEligibleRobot) {
			return created, nil
		}
		return nil, err
	}

	return h.aggregate.Order(created.Name())
}
