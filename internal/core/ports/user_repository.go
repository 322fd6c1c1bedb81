package ports

import (
	"context"

	"github.com/contentory/publishing-api/internal/core/domain"
)

// UserRepository is the credential store. The storage layer enforces email
// uniqueness and surfaces domain.ErrEmailTaken on conflict.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateRoles atomically replaces the target's role set and returns
	// the target's id.
	UpdateRoles(ctx context.Context, id string, roles domain.RoleSet) (string, error)
}
