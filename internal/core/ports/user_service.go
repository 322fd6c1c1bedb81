package ports

import (
	"context"

	"github.com/contentory/publishing-api/internal/core/domain"
)

// UserService is the privilege state machine over {Member, Administrator}.
type UserService interface {
	// Promote grants ADMIN to the target and returns the target's id.
	Promote(ctx context.Context, actor *domain.User, targetID string) (string, error)
	// Demote revokes ADMIN from the target and returns the target's id.
	Demote(ctx context.Context, actor *domain.User, targetID string) (string, error)
}
