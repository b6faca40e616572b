package commands

import (
	"errors"

	"agvsim/internal/pkg/guard"
)

var ErrSaveStateCommandIsNotConstructed = errors.New(
	"SaveStateCommand must be created via NewSaveStateCommand constructor",
)

// SaveStateCommand persists the current simulation state. The snapshot job
// issues it periodically; a manual save before shutdown uses the same path.
type SaveStateCommand struct {
	guard guard.ConstructorGuard
}

// NewSaveStateCommand creates a parameterless save command.
func NewSaveStateCommand() SaveStateCommand {
	command := SaveStateCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrSaveStateCommandIsNotConstructed if validation fails.
func (c *SaveStateCommand) Validate() error {
	return c.guard.Validate(ErrSaveStateCommandIsNotConstructed)
}
