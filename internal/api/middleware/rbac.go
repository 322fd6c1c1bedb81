package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/contentory/publishing-api/internal/core/domain"
)

// RequireAdmin rejects requests whose principal does not hold the ADMIN
// role. Must run after Auth. Failures surface as domain sentinels and
// are rendered by the central error handler.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(PrincipalKey).(*domain.User)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if !user.Roles.IsAdmin() {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
