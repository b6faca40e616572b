package commands

import (
	"context"

	"agvsim/internal/core/domain/model/robot"
	"agvsim/internal/core/state"
)

// AddRobotCommandHandler registers new robots in the live aggregate.
type AddRobotCommandHandler struct {
	aggregate *state.Aggregate
}

// NewAddRobotCommandHandler creates a handler bound to the live aggregate.
func NewAddRobotCommandHandler(aggregate *state.Aggregate) AddRobotCommandHandler {
	return AddRobotCommandHandler{
		aggregate: aggregate,
	}
}

// Handle processes the robot registration command and returns the created
// robot. Registration failures (unknown node, duplicate name) leave the
// aggregate unchanged.
func (h *AddRobotCommandHandler) Handle(_ context.Context, cmd AddRobotCommand) (*robot.Robot, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.aggregate.AddRobot(cmd.Name(), cmd.Node())
}
