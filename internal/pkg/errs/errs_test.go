package errs_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("login")

		assert.Equal(t, "login", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: login", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing form field")
		err := errs.NewValueIsRequiredErrorWithCause("login", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: login (cause: missing form field)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("role")

		assert.Equal(t, "role", err.ParamName)
		assert.Equal(t, "value is invalid: role", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown status")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "value is invalid: status (cause: unknown status)", err.Error())
	})
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "b7f9")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "b7f9", err.ID)
		assert.Equal(t, "object not found: order b7f9", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("user", "a1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: user a1 (cause: record not found)", err.Error())
	})
}

func TestNotAuthenticatedError(t *testing.T) {
	err := errs.NewNotAuthenticatedError("invalid credentials")

	assert.Equal(t, "not authenticated: invalid credentials", err.Error())
	assert.Equal(t, errs.ErrNotAuthenticated, err.Unwrap())
}

func TestAccessForbiddenError(t *testing.T) {
	err := errs.NewAccessForbiddenError("only managers can assign couriers")

	assert.Equal(t, "access forbidden: only managers can assign couriers", err.Error())
	assert.Equal(t, errs.ErrAccessForbidden, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("order already assigned")

		assert.Equal(t, "conflict: order already assigned", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewConflictErrorWithCause("email already registered", cause)

		assert.Equal(t, "conflict: email already registered (cause: duplicate key value violates unique constraint)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewValueIsRequiredError("login"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewValueIsInvalidError("role"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewObjectNotFoundError("order", "b7f9"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewNotAuthenticatedError("no token"), errs.ErrNotAuthenticated)
		require.ErrorIs(t, errs.NewAccessForbiddenError("inactive"), errs.ErrAccessForbidden)
		require.ErrorIs(t, errs.NewConflictError("taken"), errs.ErrConflict)
	})
}
