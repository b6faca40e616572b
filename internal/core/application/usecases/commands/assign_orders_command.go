package commands

import (
	"errors"

	"agvsim/internal/pkg/guard"
)

var ErrAssignOrdersCommandIsNotConstructed = errors.New(
	"AssignOrdersCommand must be created via NewAssignOrdersCommand constructor",
)

// AssignOrdersCommand triggers one batch scheduling pass over all NEW
// orders. The assignment job issues it periodically so orders that found no
// robot at creation time get retried.
type AssignOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignOrdersCommand creates a parameterless batch assignment command.
func NewAssignOrdersCommand() AssignOrdersCommand {
	command := AssignOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrdersCommandIsNotConstructed if validation fails.
func (c *AssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrdersCommandIsNotConstructed)
}
