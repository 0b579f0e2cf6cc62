package http

import (
	"strings"

	"dispatch/internal/pkg/auth"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// principal extracts and verifies the bearer token on a guarded request.
// The token only identifies the caller; authorization decisions run in the
// application core against the caller's current database state.
func (s *Server) principal(ctx echo.Context) (auth.Principal, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return auth.Principal{}, errs.NewNotAuthenticatedError("missing authorization header")
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return auth.Principal{}, errs.NewNotAuthenticatedError("authorization header is not a bearer token")
	}

	return s.tokens.Parse(token)
}
