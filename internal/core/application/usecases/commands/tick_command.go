package commands

import (
	"errors"

	"agvsim/internal/pkg/guard"
)

var ErrTickCommandIsNotConstructed = errors.New(
	"TickCommand must be created via NewTickCommand constructor",
)

// TickCommand advances the simulation by one discrete step: every executing
// robot moves one edge along its route, and robots reaching their final
// route node complete their orders.
//
// Example:
//
//	cmd := NewTickCommand()
//	summary, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("tick failed: %w", err)
//	}
//	fmt.Printf("tick %d moved %d robots", summary.Seq, len(summary.Moves))
type TickCommand struct {
	guard guard.ConstructorGuard
}

// NewTickCommand creates a parameterless tick command.
func NewTickCommand() TickCommand {
	command := TickCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrTickCommandIsNotConstructed if validation fails.
func (c *TickCommand) Validate() error {
	return c.guard.Validate(ErrTickCommandIsNotConstructed)
}
