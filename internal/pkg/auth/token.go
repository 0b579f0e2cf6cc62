// Package auth issues and verifies the signed bearer tokens that carry the
// acting principal. The token replaces the original client-supplied
// identifier header: the subject and role are signed at login and verified
// on every guarded request, and the role/status decision itself stays in the
// domain's access guard.
package auth

import (
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSecretIsRequired is returned when constructing an issuer without a
// signing secret.
var ErrSecretIsRequired = errs.NewValueIsRequiredError("auth secret")

// Principal is the verified identity extracted from a token. Only the
// subject ID and the role claimed at login; status is always re-read from
// the database before authorization.
type Principal struct {
	UserID kernel.UUID
	Role   user.Role
}

// TokenIssuer signs and verifies HMAC-SHA256 bearer tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates an issuer with the given signing secret and token
// lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for an authenticated user.
func (i *TokenIssuer) Issue(u *user.User) (string, error) {
	if err := u.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  u.ID().String(),
		"role": u.Role().String(),
		"iat":  now.Unix(),
		"exp":  now.Add(i.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Parse verifies a token and extracts the principal. Every failure mode
// (bad signature, expired, malformed claims) maps to a not-authenticated
// error so the adapter can answer 401 uniformly.
func (i *TokenIssuer) Parse(tokenString string) (Principal, error) {
	token, err := jwt.Parse(
		tokenString,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return Principal{}, errs.NewNotAuthenticatedErrorWithCause("invalid token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, errs.NewNotAuthenticatedError("invalid token claims")
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return Principal{}, errs.NewNotAuthenticatedError("token subject is missing")
	}
	userID, err := kernel.UUIDFromString(subject)
	if err != nil {
		return Principal{}, errs.NewNotAuthenticatedErrorWithCause("token subject is invalid", err)
	}

	roleClaim, ok := claims["role"].(string)
	if !ok {
		return Principal{}, errs.NewNotAuthenticatedError("token role is missing")
	}
	role, err := user.RoleFromString(roleClaim)
	if err != nil {
		return Principal{}, errs.NewNotAuthenticatedErrorWithCause("token role is invalid", err)
	}

	return Principal{UserID: userID, Role: role}, nil
}
