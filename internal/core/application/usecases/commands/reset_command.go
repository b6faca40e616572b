package commands

import (
	"errors"

	"agvsim/internal/core/state"
	"agvsim/internal/pkg/errs"
	"agvsim/internal/pkg/guard"
)

var ErrResetCommandIsNotConstructed = errors.New(
	"ResetCommand must be created via NewResetCommand constructor",
)

// ResetCommand replaces the live simulation state with a seed snapshot and
// persists the seed, giving tests and demos a known starting point.
type ResetCommand struct { //nolint:recvcheck //using for validation
	seed *state.Snapshot

	guard guard.ConstructorGuard
}

// NewResetCommand creates a command to reset to the given seed. The seed's
// referential invariants are checked when the handler applies it.
func NewResetCommand(seed *state.Snapshot) (ResetCommand, error) {
	command := ResetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSeed(seed); err != nil {
		return ResetCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResetCommandIsNotConstructed if validation fails.
func (c ResetCommand) Validate() error {
	return c.guard.Validate(ErrResetCommandIsNotConstructed)
}

// Seed returns the seed snapshot from the command.
func (c ResetCommand) Seed() *state.Snapshot {
	return c.seed
}

func (c *ResetCommand) setSeed(seed *state.Snapshot) error {
	if seed == nil {
		return errs.NewValueIsRequiredError("seed")
	}

	c.seed = seed
	return nil
}
