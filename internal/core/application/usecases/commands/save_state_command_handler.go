package commands

import (
	"context"
	"errors"

	"agvsim/internal/core/ports"
	"agvsim/internal/core/state"
)

// SaveStateCommandHandler snapshots the aggregate and hands the snapshot to
// the store. A save while no graph is loaded is a no-op: there is nothing
// worth persisting yet.
type SaveStateCommandHandler struct {
	aggregate *state.Aggregate
	store     ports.StateStore
}

// NewSaveStateCommandHandler creates a handler bound to the live aggregate
// and the configured store.
func NewSaveStateCommandHandler(aggregate *state.Aggregate, store ports.StateStore) SaveStateCommandHandler {
	return SaveStateCommandHandler{
		aggregate: aggregate,
		store:     store,
	}
}

// Handle persists the current state snapshot.
func (h *SaveStateCommandHandler) Handle(ctx context.Context, cmd SaveStateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	snap, err := h.aggregate.Snapshot()
	if err != nil {
		if errors.Is(err, state.ErrGraphNotLoaded) {
			return nil
		}
		return err
	}

	return h.store.Save(ctx, snap)
}
