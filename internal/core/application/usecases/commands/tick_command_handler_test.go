package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agvsim/internal/core/application/usecases/commands"
	"agvsim/internal/core/domain/model/order"
	"agvsim/internal/core/state"
)

func TestTickCommandHandler_Handle(t *testing.T) {
	agg := seededAggregate(t)

	addOrder := commands.NewAddOrderCommandHandler(agg)
	cmd, err := commands.NewAddOrderCommand("O-1", "A", "B")
	require.NoError(t, err)
	created, err := addOrder.Handle(t.Context(), cmd)
	require.NoError(t, err)
	require.Equal(t, order.StatusInProgress, created.Status())

	h := commands.NewTickCommandHandler(agg)

	// R1 starts at A which is the pickup node, so one tick reaches B.
	summary, err := h.Handle(t.Context(), commands.NewTickCommand())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), summary.Seq)
	require.Len(t, summary.Moves, 1)
	assert.Equal(t, state.RobotMove{Robot: "R1", From: "A", To: "B"}, summary.Moves[0])
	assert.Equal(t, []string{"O-1"}, summary.CompletedOrders)

	t.Run("unconstructed command", func(t *testing.T) {
		_, err := h.Handle(t.Context(), commands.TickCommand{})
		assert.ErrorIs(t, err, commands.ErrTickCommandIsNotConstructed)
	})
}

func TestAssignOrdersCommandHandler_Handle(t *testing.T) {
	agg := seededAggregate(t)
	h := commands.NewAssignOrdersCommandHandler(agg)

	// The seed carries one NEW order (O-1001, B -> D); the pass assigns it
	// to R1, the nearest idle robot.
	assignments, err := h.Handle(t.Context(), commands.NewAssignOrdersCommand())
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "O-1001", assignments[0].Order)
	assert.Equal(t, "R1", assignments[0].Robot)

	// A second pass has nothing left to assign.
	assignments, err = h.Handle(t.Context(), commands.NewAssignOrdersCommand())
	require.NoError(t, err)
	assert.Empty(t, assignments)

	t.Run("unconstructed command", func(t *testing.T) {
		_, err := h.Handle(t.Context(), commands.AssignOrdersCommand{})
		assert.ErrorIs(t, err, commands.ErrAssignOrdersCommandIsNotConstructed)
	})
}
