// Package queries contains read operations in the CQRS architecture.
// Listing queries bypass the domain model and read the database directly;
// login is the exception, since it must run the domain's login gates.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/guard"
)

var ErrLoginQueryIsNotConstructed = errors.New(
	"LoginQuery must be created via NewLoginQuery constructor",
)

// LoginQuery authenticates a user on one of the per-role login paths.
// The same email can only hold one account, but the role in the path must
// match: logging into the courier app with a customer account fails the same
// way a wrong password does.
type LoginQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a login attempt for the given role path.
func NewLoginQuery(email, password string, role user.Role) (LoginQuery, error) {
	query := LoginQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setEmail(email),
		query.setPassword(password),
		query.setRole(role),
	); err != nil {
		return LoginQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Email returns the login email.
func (q LoginQuery) Email() string { return q.email }

// Password returns the plaintext password to verify.
func (q LoginQuery) Password() string { return q.password }

// Role returns the role path the login came through.
func (q LoginQuery) Role() user.Role { return q.role }

func (q *LoginQuery) setEmail(email string) error {
	if email == "" {
		return user.ErrEmailIsRequired
	}
	q.email = email
	return nil
}

func (q *LoginQuery) setPassword(password string) error {
	if password == "" {
		return user.ErrPasswordHashIsRequired
	}
	q.password = password
	return nil
}

func (q *LoginQuery) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	q.role = role
	return nil
}

// LoginQueryResponse carries the signed token and a summary of the
// authenticated account. The password hash never leaves the core.
type LoginQueryResponse struct {
	Token  string
	UserID kernel.UUID
	Login  string
	Email  string
	Role   user.Role
}
