package order_test

import (
	"testing"

	"agvsim/internal/core/domain/model/order"
	"agvsim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("valid order starts NEW", func(t *testing.T) {
		o, err := order.NewOrder("O1", "B", "D")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "O1", o.Name())
		assert.Equal(t, "B", o.Source())
		assert.Equal(t, "D", o.Target())
		assert.Equal(t, order.StatusNew, o.Status())
		assert.Empty(t, o.AssignedRobot())
		assert.True(t, o.IsNew())
	})

	t.Run("source equal to target is allowed", func(t *testing.T) {
		o, err := order.NewOrder("O1", "B", "B")
		require.NoError(t, err)
		assert.Equal(t, "B", o.Target())
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		for _, tc := range []struct {
			name, source, target string
		}{
			{"", "B", "D"},
			{"O1", "", "D"},
			{"O1", "B", ""},
		} {
			_, err := order.NewOrder(tc.name, tc.source, tc.target)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores in-progress order", func(t *testing.T) {
		o, err := order.RestoreOrder("O1", "B", "D", order.StatusInProgress, "R1")

		require.NoError(t, err)
		assert.Equal(t, order.StatusInProgress, o.Status())
		assert.Equal(t, "R1", o.AssignedRobot())
	})

	t.Run("in-progress without robot is rejected", func(t *testing.T) {
		_, err := order.RestoreOrder("O1", "B", "D", order.StatusInProgress, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("new order with robot is rejected", func(t *testing.T) {
		_, err := order.RestoreOrder("O1", "B", "D", order.StatusNew, "R1")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("done order carries no robot", func(t *testing.T) {
		o, err := order.RestoreOrder("O1", "B", "D", order.StatusDone, "")
		require.NoError(t, err)
		assert.Equal(t, order.StatusDone, o.Status())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := order.RestoreOrder("O1", "B", "D", order.Status("PENDING"), "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("new order becomes in progress", func(t *testing.T) {
		o, _ := order.NewOrder("O1", "B", "D")

		require.NoError(t, o.Assign("R1"))
		assert.Equal(t, order.StatusInProgress, o.Status())
		assert.Equal(t, "R1", o.AssignedRobot())
	})

	t.Run("in-progress order rejects reassignment", func(t *testing.T) {
		o, _ := order.NewOrder("O1", "B", "D")
		require.NoError(t, o.Assign("R1"))

		err := o.Assign("R2")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "R1", o.AssignedRobot())
	})

	t.Run("empty robot name is rejected", func(t *testing.T) {
		o, _ := order.NewOrder("O1", "B", "D")
		require.ErrorIs(t, o.Assign(""), errs.ErrValueIsRequired)
		assert.True(t, o.IsNew())
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("in-progress order completes and clears assignment", func(t *testing.T) {
		o, _ := order.NewOrder("O1", "B", "D")
		require.NoError(t, o.Assign("R1"))

		require.NoError(t, o.Complete())
		assert.Equal(t, order.StatusDone, o.Status())
		assert.Empty(t, o.AssignedRobot())
	})

	t.Run("new order cannot complete", func(t *testing.T) {
		o, _ := order.NewOrder("O1", "B", "D")
		require.ErrorIs(t, o.Complete(), errs.ErrValueIsInvalid)
	})

	t.Run("done is terminal", func(t *testing.T) {
		o, _ := order.NewOrder("O1", "B", "D")
		require.NoError(t, o.Assign("R1"))
		require.NoError(t, o.Complete())

		require.ErrorIs(t, o.Complete(), errs.ErrValueIsInvalid)
		require.ErrorIs(t, o.Assign("R2"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, o.Fail(), errs.ErrValueIsInvalid)
	})
}

func TestOrder_Fail(t *testing.T) {
	t.Run("new order can be cancelled", func(t *testing.T) {
		o, _ := order.NewOrder("O1", "B", "D")

		require.NoError(t, o.Fail())
		assert.Equal(t, order.StatusFailed, o.Status())
	})

	t.Run("in-progress order can be cancelled", func(t *testing.T) {
		o, _ := order.NewOrder("O1", "B", "D")
		require.NoError(t, o.Assign("R1"))

		require.NoError(t, o.Fail())
		assert.Equal(t, order.StatusFailed, o.Status())
		assert.Empty(t, o.AssignedRobot())
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{
		order.StatusNew, order.StatusInProgress, order.StatusDone, order.StatusFailed,
	} {
		require.NoError(t, s.Validate())
	}
	require.Error(t, order.Status("").Validate())
	require.Error(t, order.Status("WAITING").Validate())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.StatusNew.IsTerminal())
	assert.False(t, order.StatusInProgress.IsTerminal())
	assert.True(t, order.StatusDone.IsTerminal())
	assert.True(t, order.StatusFailed.IsTerminal())
}
