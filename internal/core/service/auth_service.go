package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/contentory/publishing-api/internal/core/domain"
	"github.com/contentory/publishing-api/internal/core/ports"
	"github.com/contentory/publishing-api/internal/core/security"
	"github.com/contentory/publishing-api/internal/core/token"
)

// AuthService implements sign-up and login.
type AuthService struct {
	users  ports.UserRepository
	tokens *token.Service
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *token.Service, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// SignUp registers a new account. Every account starts with the plain USER
// role and active status; ADMIN is only ever granted through UserService.
func (s *AuthService) SignUp(ctx context.Context, name, surname, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Surname:      surname,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		Roles:        domain.RoleUser,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and issues a bearer token for the account
// email. Unknown email, wrong password and deactivated account all return
// ErrInvalidCredentials so the endpoint leaks nothing about which accounts
// exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if !user.IsActive {
		return "", domain.ErrInvalidCredentials
	}
	if !security.VerifyPassword(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.Email, time.Now().UTC())
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return signed, nil
}
