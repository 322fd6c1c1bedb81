package ports

import (
	"context"

	"github.com/contentory/publishing-api/internal/core/domain"
)

type AuthService interface {
	// SignUp registers a new account with the plain USER role.
	SignUp(ctx context.Context, name, surname, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, error)
}
