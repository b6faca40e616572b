// Package ports defines the outbound interfaces of the application core.
// Adapters (sqlite, postgres, in-memory) implement them; the core never
// imports an adapter.
package ports

import (
	"context"

	"agvsim/internal/core/state"
)

// StateStore persists whole simulation snapshots. The store keeps exactly one
// snapshot — the latest saved one — so Load after Save returns a snapshot
// equal to the one saved.
//
// Implementations must treat Save and Reset as atomic: a crashed write leaves
// the previous snapshot intact, never a half-written one.
type StateStore interface {
	// Load returns the most recently saved snapshot. When nothing was ever
	// saved it returns an error matching errs.ErrObjectNotFound.
	Load(ctx context.Context) (*state.Snapshot, error)

	// Save replaces the stored snapshot with the given one.
	Save(ctx context.Context, snap *state.Snapshot) error

	// Reset discards the stored snapshot and stores the given seed instead.
	Reset(ctx context.Context, seed *state.Snapshot) error
}
