package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/contentory/publishing-api/internal/core/domain"
	"github.com/contentory/publishing-api/internal/core/ports"
)

// UserService owns the admin privilege state machine. The check order is
// load-bearing: authorization, then self-target, then existence, then role
// state. An unauthorized actor must never learn whether a target exists.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Promote grants ADMIN to the target. Promoting an administrator fails with
// ErrAlreadyAdmin: the transition is one-shot, not an upsert.
func (s *UserService) Promote(ctx context.Context, actor *domain.User, targetID string) (string, error) {
	target, err := s.resolveTarget(ctx, actor, targetID)
	if err != nil {
		return "", err
	}
	if target.Roles.IsAdmin() {
		return "", domain.ErrAlreadyAdmin
	}

	id, err := s.users.UpdateRoles(ctx, target.ID, target.Roles.With(domain.RoleAdmin))
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("actor_id", actor.ID).Str("target_id", id).Msg("admin role granted")
	return id, nil
}

// Demote revokes ADMIN from the target. Demoting a plain member fails with
// ErrNotAdmin.
func (s *UserService) Demote(ctx context.Context, actor *domain.User, targetID string) (string, error) {
	target, err := s.resolveTarget(ctx, actor, targetID)
	if err != nil {
		return "", err
	}
	if !target.Roles.IsAdmin() {
		return "", domain.ErrNotAdmin
	}

	// Without never drops the USER role, so the persisted set stays
	// non-empty.
	id, err := s.users.UpdateRoles(ctx, target.ID, target.Roles.Without(domain.RoleAdmin))
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("actor_id", actor.ID).Str("target_id", id).Msg("admin role revoked")
	return id, nil
}

// resolveTarget runs the guards shared by both transitions, in order.
func (s *UserService) resolveTarget(ctx context.Context, actor *domain.User, targetID string) (*domain.User, error) {
	if !actor.Roles.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if actor.ID == targetID {
		return nil, domain.ErrSelfTarget
	}
	return s.users.FindByID(ctx, targetID)
}
