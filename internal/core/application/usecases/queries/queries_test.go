package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agvsim/internal/core/application/usecases/queries"
	"agvsim/internal/core/domain/model/order"
	"agvsim/internal/core/domain/model/robot"
	"agvsim/internal/core/state"
)

func seededAggregate(t *testing.T) *state.Aggregate {
	t.Helper()
	agg := state.NewAggregate()
	seed, err := state.Seed()
	require.NoError(t, err)
	require.NoError(t, agg.Replace(seed))
	return agg
}

func TestGetGraphQueryHandler_Handle(t *testing.T) {
	h := queries.NewGetGraphQueryHandler(seededAggregate(t))

	got, err := h.Handle(t.Context(), queries.NewGetGraphQuery())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, got.Nodes)
	require.Len(t, got.Edges, 6)
	assert.Equal(t, queries.EdgeResponse{From: "A", To: "B", Weight: 1}, got.Edges[0])

	t.Run("no graph loaded", func(t *testing.T) {
		h := queries.NewGetGraphQueryHandler(state.NewAggregate())
		_, err := h.Handle(t.Context(), queries.NewGetGraphQuery())
		assert.ErrorIs(t, err, state.ErrGraphNotLoaded)
	})

	t.Run("unconstructed query", func(t *testing.T) {
		_, err := h.Handle(t.Context(), queries.GetGraphQuery{})
		assert.ErrorIs(t, err, queries.ErrGetGraphQueryIsNotConstructed)
	})
}

func TestGetRobotsQueryHandler_Handle(t *testing.T) {
	h := queries.NewGetRobotsQueryHandler(seededAggregate(t))

	got, err := h.Handle(t.Context(), queries.NewGetRobotsQuery())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, queries.GetRobotsQueryResponse{Name: "R1", Status: robot.StatusIdle, Node: "A"}, got[0])
	assert.Equal(t, queries.GetRobotsQueryResponse{Name: "R2", Status: robot.StatusIdle, Node: "C"}, got[1])
	assert.Equal(t, queries.GetRobotsQueryResponse{Name: "R3", Status: robot.StatusIdle, Node: "E"}, got[2])
}

func TestGetOrdersQueryHandler_Handle(t *testing.T) {
	h := queries.NewGetOrdersQueryHandler(seededAggregate(t))

	got, err := h.Handle(t.Context(), queries.NewGetOrdersQuery())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, queries.GetOrdersQueryResponse{
		Name:   "O-1001",
		Source: "B",
		Target: "D",
		Status: order.StatusNew,
	}, got[0])
}

func TestGetRoutesQueryHandler_Handle(t *testing.T) {
	agg := seededAggregate(t)
	h := queries.NewGetRoutesQueryHandler(agg)

	// No robot is executing yet.
	got, err := h.Handle(t.Context(), queries.NewGetRoutesQuery())
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = agg.AssignOrder("O-1001")
	require.NoError(t, err)

	got, err = h.Handle(t.Context(), queries.NewGetRoutesQuery())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, queries.GetRoutesQueryResponse{
		Robot: "R1",
		Order: "O-1001",
		Path:  []string{"A", "B", "C", "D"},
	}, got[0])

	// After one tick the traversed prefix falls off the reported path.
	_, err = agg.Tick()
	require.NoError(t, err)

	got, err = h.Handle(t.Context(), queries.NewGetRoutesQuery())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"B", "C", "D"}, got[0].Path)
}

func TestQueriesAreSideEffectFree(t *testing.T) {
	agg := seededAggregate(t)
	before, err := agg.Snapshot()
	require.NoError(t, err)

	_, err = queries.NewGetGraphQueryHandler(agg).Handle(t.Context(), queries.NewGetGraphQuery())
	require.NoError(t, err)
	_, err = queries.NewGetRobotsQueryHandler(agg).Handle(t.Context(), queries.NewGetRobotsQuery())
	require.NoError(t, err)
	_, err = queries.NewGetOrdersQueryHandler(agg).Handle(t.Context(), queries.NewGetOrdersQuery())
	require.NoError(t, err)
	_, err = queries.NewGetRoutesQueryHandler(agg).Handle(t.Context(), queries.NewGetRoutesQuery())
	require.NoError(t, err)

	after, err := agg.Snapshot()
	require.NoError(t, err)
	assert.True(t, before.Equal(after))
}
