package commands

import (
	"errors"

	"agvsim/internal/pkg/errs"
	"agvsim/internal/pkg/guard"
)

var ErrAddRobotCommandIsNotConstructed = errors.New(
	"AddRobotCommand must be created via NewAddRobotCommand constructor",
)

// AddRobotCommand represents a request to register a new robot standing idle
// at a node of the loaded graph.
type AddRobotCommand struct { //nolint:recvcheck //using for validation
	name string
	node string

	guard guard.ConstructorGuard
}

// NewAddRobotCommand creates a command to register a robot. Name and node
// must be non-empty; node existence is checked against the loaded graph by
// the handler.
func NewAddRobotCommand(name string, node string) (AddRobotCommand, error) {
	command := AddRobotCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setNode(node),
	); err != nil {
		return AddRobotCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddRobotCommandIsNotConstructed if validation fails.
func (c AddRobotCommand) Validate() error {
	return c.guard.Validate(ErrAddRobotCommandIsNotConstructed)
}

// Name returns the robot name from the command.
func (c AddRobotCommand) Name() string {
	return c.name
}

// Node returns the starting node from the command.
func (c AddRobotCommand) Node() string {
	return c.node
}

func (c *AddRobotCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *AddRobotCommand) setNode(node string) error {
	if node == "" {
		return errs.NewValueIsRequiredError("node")
	}

	c.node = node
	return nil
}
