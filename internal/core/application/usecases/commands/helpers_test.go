package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agvsim/internal/core/state"
)

type MockStateStore struct{ mock.Mock }

func (m *MockStateStore) Load(ctx context.Context) (*state.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*state.Snapshot), args.Error(1)
}

func (m *MockStateStore) Save(ctx context.Context, snap *state.Snapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

func (m *MockStateStore) Reset(ctx context.Context, seed *state.Snapshot) error {
	args := m.Called(ctx, seed)
	return args.Error(0)
}

func seededAggregate(t *testing.T) *state.Aggregate {
	t.Helper()
	agg := state.NewAggregate()
	seed, err := state.Seed()
	require.NoError(t, err)
	require.NoError(t, agg.Replace(seed))
	return agg
}
