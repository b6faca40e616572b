package errs_test

import (
	"errors"
	"testing"

	"agvsim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("node", "X")

		assert.Equal(t, "node", err.ParamName)
		assert.Equal(t, "X", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: X", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("store is empty")
		err := errs.NewObjectNotFoundErrorWithCause("snapshot", "latest", cause)

		assert.Equal(t, "snapshot", err.ParamName)
		assert.Equal(t, "latest", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: snapshot, ID is: latest (cause: store is empty)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestDuplicateNameError(t *testing.T) {
	t.Run("NewDuplicateNameError", func(t *testing.T) {
		err := errs.NewDuplicateNameError("robot", "R1")

		assert.Equal(t, "robot", err.ParamName)
		assert.Equal(t, "R1", err.Name)
		require.NoError(t, err.Cause)
		assert.Equal(t, `name already exists: robot "R1"`, err.Error())
		assert.Equal(t, errs.ErrDuplicateName, err.Unwrap())
	})

	t.Run("NewDuplicateNameErrorWithCause", func(t *testing.T) {
		cause := errors.New("unique constraint")
		err := errs.NewDuplicateNameErrorWithCause("order", "O1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, `name already exists: order "O1" (cause: unique constraint)`, err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewDuplicateNameError("order", "bad\nname")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("NaN is not a valid weight")
		err := errs.NewValueIsInvalidErrorWithCause("edge weight", cause)

		assert.Equal(t, "edge weight", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: edge weight (cause: NaN is not a valid weight)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("weight", -1.5, 0, "+Inf")

		assert.Equal(t, "weight", err.ParamName)
		assert.Equal(t, -1.5, err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: -1.5 is weight, min value is 0, max value is +Inf", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("cursor", -5, 0, 100, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is cursor, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: name (cause: missing required field)", err.Error())
	})
}

func TestInvariantViolationError(t *testing.T) {
	t.Run("NewInvariantViolationError", func(t *testing.T) {
		err := errs.NewInvariantViolationError("executing robot has empty route")

		require.NoError(t, err.Cause)
		assert.Equal(t, "invariant violation: executing robot has empty route", err.Error())
		assert.Equal(t, errs.ErrInvariantViolation, err.Unwrap())
	})

	t.Run("NewInvariantViolationErrorWithCause", func(t *testing.T) {
		cause := errors.New("cursor past route end")
		err := errs.NewInvariantViolationErrorWithCause("robot R1 cannot advance", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "invariant violation: robot R1 cannot advance (cause: cursor past route end)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrDuplicateName)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvariantViolation)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "name already exists", errs.ErrDuplicateName.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invariant violation", errs.ErrInvariantViolation.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("node", "X"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewDuplicateNameError("robot", "R1"), errs.ErrDuplicateName)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("weight", -1, 0, 1), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewInvariantViolationError("broken"), errs.ErrInvariantViolation)
	})
}
