package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/edublog/blog-system/internal/core/domain"
)

// Authorize enforces role-based access control. It must run after
// Authenticate; without claims in context the request is unauthenticated.
func Authorize(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyRole).(string)
			if role == "" {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
