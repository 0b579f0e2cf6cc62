package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")
)

// RegisterUserCommand represents a request to register a customer, manager,
// or admin account. Couriers register through RegisterCourierCommand, which
// carries the mandatory document uploads; passing the courier role here is
// rejected up front.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand("ana", "ana@example.com", "11999990000", "s3cret", user.RoleCustomer)
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	login    string
	email    string
	phone    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a registration command for non-courier roles.
// Login, email, and password are required; phone is optional.
func NewRegisterUserCommand(login, email, phone, password string, role user.Role) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if role == user.RoleCourier {
		return RegisterUserCommand{}, user.ErrCourierSelfRegistration
	}

	if err := errors.Join(
		cmd.setLogin(login),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Login returns the display login name.
func (c RegisterUserCommand) Login() string { return c.login }

// Email returns the unique email address.
func (c RegisterUserCommand) Email() string { return c.email }

// Phone returns the optional phone number.
func (c RegisterUserCommand) Phone() string { return c.phone }

// Password returns the plaintext password. It is hashed by the handler and
// never persisted.
func (c RegisterUserCommand) Password() string { return c.password }

// Role returns the requested account role.
func (c RegisterUserCommand) Role() user.Role { return c.role }

func (c *RegisterUserCommand) setLogin(login string) error {
	if login == "" {
		return user.ErrLoginIsRequired
	}
	c.login = login
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return user.ErrEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
