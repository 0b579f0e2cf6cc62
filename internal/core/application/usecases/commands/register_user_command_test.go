package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand(t *testing.T) {
	t.Run("creates_valid_command", func(t *testing.T) {
		cmd, err := commands.NewRegisterUserCommand("ana", "ana@example.com", "11999990000", "s3cret", user.RoleCustomer)
		require.NoError(t, err)
		assert.Equal(t, "ana", cmd.Login())
		assert.Equal(t, "ana@example.com", cmd.Email())
		assert.Equal(t, "11999990000", cmd.Phone())
		assert.Equal(t, "s3cret", cmd.Password())
		assert.Equal(t, user.RoleCustomer, cmd.Role())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("allows_empty_phone", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand("ana", "ana@example.com", "", "s3cret", user.RoleManager)
		require.NoError(t, err)
	})

	t.Run("rejects_missing_login", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand("", "ana@example.com", "", "s3cret", user.RoleCustomer)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_missing_email", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand("ana", "", "", "s3cret", user.RoleCustomer)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_missing_password", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand("ana", "ana@example.com", "", "", user.RoleCustomer)
		require.ErrorIs(t, err, commands.ErrPasswordIsRequired)
	})

	t.Run("rejects_courier_role", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand("joao", "joao@example.com", "", "s3cret", user.RoleCourier)
		require.ErrorIs(t, err, user.ErrCourierSelfRegistration)
	})

	t.Run("rejects_unknown_role", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand("ana", "ana@example.com", "", "s3cret", user.RoleUnknown)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.RegisterUserCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterUserCommandIsNotConstructed)
	})
}
