package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/contentory/publishing-api/internal/api/middleware"
	"github.com/contentory/publishing-api/internal/core/domain"
)

// principal extracts the authenticated user injected by the Auth
// middleware. Its presence proves the middleware ran; a missing principal
// on a protected route is a wiring bug surfaced as 401, never a panic.
func principal(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.PrincipalKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
