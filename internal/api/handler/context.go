package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/edublog/blog-system/internal/api/middleware"
	"github.com/edublog/blog-system/internal/core/domain"
)

// ctxRole extracts the role injected by the Authenticate middleware. An empty
// role means the middleware did not run for this route.
func ctxRole(c echo.Context) (string, error) {
	role, _ := c.Get(middleware.ContextKeyRole).(string)
	if role == "" {
		return "", domain.ErrUnauthenticated
	}
	return role, nil
}
