package guard_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		assert.NotNil(t, g)
		require.NoError(t, g.Validate(errors.New("object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample shows the pattern followed by commands and
// aggregates across the codebase: zero values fail validation, constructed
// values pass.
func TestConstructorGuardUsageExample(t *testing.T) {
	type credentials struct {
		email    string
		password string
		guard    guard.ConstructorGuard
	}

	errNotConstructed := errors.New("credentials must be created via newCredentials")

	newCredentials := func(email, password string) (credentials, error) {
		if email == "" || password == "" {
			return credentials{}, errors.New("email and password are required")
		}
		return credentials{email: email, password: password, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes_validation", func(t *testing.T) {
		c, err := newCredentials("rider@example.com", "secret")
		require.NoError(t, err)
		require.NoError(t, c.guard.Validate(errNotConstructed))
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var c credentials
		err := c.guard.Validate(errNotConstructed)
		require.ErrorIs(t, err, errNotConstructed)
	})
}
