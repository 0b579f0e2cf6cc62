package queries

import (
	"context"
	"errors"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/auth"
	"dispatch/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for an unknown email, a wrong role path,
// or a wrong password. The three cases are deliberately indistinguishable.
var ErrInvalidCredentials = errs.NewNotAuthenticatedError("invalid credentials")

// LoginQueryHandler authenticates users and issues bearer tokens.
// Couriers additionally pass the approval gates: incomplete documents,
// missing approval, and non-active status each fail with their own message.
type LoginQueryHandler struct {
	users  ports.UserRepository
	issuer *auth.TokenIssuer
}

// NewLoginQueryHandler creates a handler for login attempts.
func NewLoginQueryHandler(users ports.UserRepository, issuer *auth.TokenIssuer) LoginQueryHandler {
	return LoginQueryHandler{
		users:  users,
		issuer: issuer,
	}
}

// Handle verifies the credentials and returns a signed token.
// The login gates run before the password compare: a courier whose account
// is not yet allowed in gets the specific forbidden message regardless of
// the password supplied.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginQueryResponse{}, err
	}

	account, err := h.users.GetByEmailAndRole(ctx, query.Email(), query.Role())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginQueryResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginQueryResponse{}, err
	}

	if err := account.CanLogin(); err != nil {
		return LoginQueryResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(account.PasswordHash()),
		[]byte(query.Password()),
	); err != nil {
		return LoginQueryResponse{}, ErrInvalidCredentials
	}

	token, err := h.issuer.Issue(account)
	if err != nil {
		return LoginQueryResponse{}, err
	}

	return LoginQueryResponse{
		Token:  token,
		UserID: account.ID(),
		Login:  account.Login(),
		Email:  account.Email(),
		Role:   account.Role(),
	}, nil
}
