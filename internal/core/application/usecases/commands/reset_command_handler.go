package commands

import (
	"context"

	"agvsim/internal/core/ports"
	"agvsim/internal/core/state"
)

// ResetCommandHandler swaps the live state for a seed snapshot and writes
// the seed through to the store, so a restart after a reset comes back up in
// the seed state and not in whatever preceded the reset.
type ResetCommandHandler struct {
	aggregate *state.Aggregate
	store     ports.StateStore
}

// NewResetCommandHandler creates a handler bound to the live aggregate and
// the configured store.
func NewResetCommandHandler(aggregate *state.Aggregate, store ports.StateStore) ResetCommandHandler {
	return ResetCommandHandler{
		aggregate: aggregate,
		store:     store,
	}
}

// Handle validates the seed, replaces the live state with it and persists
// it. When persisting fails the live state is already reset; the error is
// returned so the caller knows the store and the aggregate disagree.
func (h *ResetCommandHandler) Handle(ctx context.Context, cmd ResetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.aggregate.Replace(cmd.Seed()); err != nil {
		return err
	}

	return h.store.Reset(ctx, cmd.Seed())
}
