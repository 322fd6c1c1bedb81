package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/contentory/publishing-api/internal/core/domain"
	"github.com/contentory/publishing-api/internal/core/ports"
	"github.com/contentory/publishing-api/internal/core/token"
)

// PrincipalKey is the echo context key under which Auth stores the
// resolved *domain.User for the rest of the request.
const PrincipalKey = "principal"

// Auth resolves the bearer token into an authenticated principal. The
// token subject is looked up in the user store on every request, so a
// token that outlives its account (deleted or deactivated) fails exactly
// like a bad token. Every failure path returns ErrUnauthenticated; the
// central error handler renders the one opaque 401, so the client learns
// nothing about why.
func Auth(tokens *token.Service, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrUnauthenticated
			}

			subject, err := tokens.Verify(parts[1], time.Now().UTC())
			if err != nil {
				return domain.ErrUnauthenticated
			}

			user, err := users.FindByEmail(c.Request().Context(), subject)
			if err != nil || !user.IsActive {
				return domain.ErrUnauthenticated
			}

			c.Set(PrincipalKey, user)
			return next(c)
		}
	}
}
