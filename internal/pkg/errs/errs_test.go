package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", int64(42))

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, int64(42), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("user", "7", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: user, ID is: 7 (cause: connection reset)",
			err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("login id", "alice")

		assert.Equal(t, "object already exists: login id alice", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsErrorWithCause("email", "a@b.c", errors.New("duplicate key"))

		assert.Equal(t, "object already exists: email a@b.c (cause: duplicate key)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("0 is not greater than 0"))

		assert.Equal(t, "value is invalid: quantity (cause: 0 is not greater than 0)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("batch size", 5000, 1, 1000)

		assert.Equal(t, 5000, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		assert.Equal(t, "value is out of range: batch size is 5000, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("retries", -1, 0, 10, errors.New("negative"))

		assert.Equal(t,
			"value is out of range: retries is -1, min value is 0, max value is 10 (cause: negative)",
			err.Error())
	})

	t.Run("keeps message on one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("name", "first\nsecond", 0, 10)

		assert.Contains(t, err.Error(), "first second")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("product name")

		assert.Equal(t, "value is required: product name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("line items", errors.New("empty list"))

		assert.Equal(t, "value is required: line items (cause: empty list)", err.Error())
	})
}

func TestIsValidation(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"required", errs.NewValueIsRequiredError("x"), true},
		{"invalid", errs.NewValueIsInvalidError("x"), true},
		{"out of range", errs.NewValueIsOutOfRangeError("x", 1, 2, 3), true},
		{"wrapped", fmt.Errorf("create order: %w", errs.NewValueIsInvalidError("x")), true},
		{"joined", errors.Join(errors.New("other"), errs.NewValueIsRequiredError("x")), true},
		{"not found", errs.NewObjectNotFoundError("order", 1), false},
		{"plain", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, errs.IsValidation(tc.err))
		})
	}
}
