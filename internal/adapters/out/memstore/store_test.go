package memstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agvsim/internal/adapters/out/memstore"
	"agvsim/internal/core/state"
	"agvsim/internal/pkg/errs"
)

func TestRoundTrip(t *testing.T) {
	store := memstore.NewStore()
	ctx := t.Context()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	seed, err := state.Seed()
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, seed))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, seed.Equal(loaded))

	// The stored copy must not alias the caller's snapshot.
	require.NoError(t, seed.Robots[0].AssignRoute("O-X", []string{"A", "B"}))
	reloaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, reloaded.Robots[0].IsIdle())
}

func TestReset(t *testing.T) {
	store := memstore.NewStore()
	ctx := t.Context()

	agg := state.NewAggregate()
	seed, err := state.Seed()
	require.NoError(t, err)
	require.NoError(t, agg.Replace(seed))
	_, err = agg.AssignOrder("O-1001")
	require.NoError(t, err)
	snap, err := agg.Snapshot()
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, snap))

	fresh, err := state.Seed()
	require.NoError(t, err)
	require.NoError(t, store.Reset(ctx, fresh))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.Orders[0].IsNew())
}

func TestSaveNil(t *testing.T) {
	store := memstore.NewStore()
	assert.ErrorIs(t, store.Save(t.Context(), nil), errs.ErrValueIsRequired)
}
