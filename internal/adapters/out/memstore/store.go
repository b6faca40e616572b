// Package memstore keeps the snapshot in process memory. It backs the
// "memory" store driver for demos and tests where the state should not
// survive a restart.
package memstore

import (
	"context"
	"sync"

	"agvsim/internal/core/state"
	"agvsim/internal/pkg/errs"
)

// Store implements ports.StateStore without any durable backing. Snapshots
// are cloned on the way in and out so callers never alias the stored copy.
type Store struct {
	mu   sync.Mutex
	snap *state.Snapshot
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Load returns a clone of the stored snapshot.
func (s *Store) Load(_ context.Context) (*state.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap == nil {
		return nil, errs.NewObjectNotFoundError("snapshot", 1)
	}
	return s.snap.Clone(), nil
}

// Save replaces the stored snapshot.
func (s *Store) Save(_ context.Context, snap *state.Snapshot) error {
	if snap == nil {
		return errs.NewValueIsRequiredError("snapshot")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap.Clone()
	return nil
}

// Reset stores the seed, discarding whatever was there.
func (s *Store) Reset(ctx context.Context, seed *state.Snapshot) error {
	return s.Save(ctx, seed)
}
