package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/edublog/blog-system/internal/core/domain"
	"github.com/edublog/blog-system/internal/core/ports"
)

// Context keys set by Authenticate.
const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "role"
)

// Authenticate validates the bearer token and injects its claims into context.
// No token at all is ErrUnauthenticated; a token that cannot be verified,
// including one sent under another scheme, is ErrInvalidToken.
func Authenticate(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, present := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !present {
				return domain.ErrUnauthenticated
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				return domain.ErrInvalidToken
			}

			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyRole, claims.Role)

			return next(c)
		}
	}
}

// bearerToken returns the credential part of the header. present is false
// when the header carries no credential at all.
func bearerToken(header string) (token string, present bool) {
	parts := strings.Fields(header)
	switch {
	case len(parts) < 2:
		return "", false
	case len(parts) > 2 || !strings.EqualFold(parts[0], "bearer"):
		// Something was sent but it is not a usable bearer token.
		return "", true
	default:
		return parts[1], true
	}
}
