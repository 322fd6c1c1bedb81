package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/contentory/publishing-api/internal/core/domain"
	"github.com/contentory/publishing-api/internal/core/token"
)

type stubUserRepo struct {
	users       map[string]*domain.User // keyed by id
	findByIDCnt int
	updatedID   string
	updated     domain.RoleSet
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.findByIDCnt++
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateRoles(_ context.Context, id string, roles domain.RoleSet) (string, error) {
	u, ok := r.users[id]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	u.Roles = roles
	r.updatedID = id
	r.updated = roles
	return id, nil
}

func newAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, token.New("secret", time.Hour), zerolog.Nop())
}

func TestAuthService_SignUp_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.SignUp(context.Background(), "Alice", "Smith", "alice@example.com", "pw12345")
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.PasswordHash == "pw12345" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw12345")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Roles != domain.RoleUser {
		t.Fatalf("new account must hold exactly the USER role, got %b", user.Roles)
	}
	if !user.IsActive {
		t.Fatalf("new account must be active")
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.SignUp(context.Background(), "Bob", "Stone", "bob@example.com", "pw"); err != nil {
		t.Fatalf("first sign-up failed: %v", err)
	}
	if _, err := svc.SignUp(context.Background(), "Rob", "Stone", "bob@example.com", "pw2"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.SignUp(context.Background(), "Carol", "Reed", "carol@example.com", "s3cret"); err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}

	signed, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty")
	}

	subject, err := token.New("secret", time.Hour).Verify(signed, time.Now().UTC())
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if subject != "carol@example.com" {
		t.Fatalf("unexpected subject: %s", subject)
	}
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.SignUp(context.Background(), "Dave", "Hill", "dave@example.com", "goodpass"); err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}

	// Wrong password and unknown email must be indistinguishable.
	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "ghost@example.com", "goodpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty input, got %v", err)
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.SignUp(context.Background(), "Eve", "Gray", "eve@example.com", "pw")
	if err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}
	repo.users[user.ID].IsActive = false

	if _, err := svc.Login(context.Background(), "eve@example.com", "pw"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for inactive account, got %v", err)
	}
}
