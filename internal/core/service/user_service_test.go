package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/contentory/publishing-api/internal/core/domain"
)

func seedUser(repo *stubUserRepo, id string, roles domain.RoleSet) *domain.User {
	u := &domain.User{
		ID:       id,
		Email:    id + "@example.com",
		IsActive: true,
		Roles:    roles,
	}
	repo.users[id] = u
	return u
}

func TestUserService_Promote_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(repo, "admin-1", domain.RoleUser|domain.RoleAdmin)
	seedUser(repo, "member-1", domain.RoleUser)

	id, err := svc.Promote(context.Background(), admin, "member-1")
	if err != nil {
		t.Fatalf("Promote returned error: %v", err)
	}
	if id != "member-1" {
		t.Fatalf("unexpected target id: %s", id)
	}
	if !repo.updated.IsAdmin() || !repo.updated.Has(domain.RoleUser) {
		t.Fatalf("persisted role set wrong: %b", repo.updated)
	}
}

func TestUserService_Promote_NotIdempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(repo, "admin-1", domain.RoleUser|domain.RoleAdmin)
	seedUser(repo, "member-1", domain.RoleUser)

	if _, err := svc.Promote(context.Background(), admin, "member-1"); err != nil {
		t.Fatalf("first Promote failed: %v", err)
	}
	if _, err := svc.Promote(context.Background(), admin, "member-1"); err != domain.ErrAlreadyAdmin {
		t.Fatalf("expected ErrAlreadyAdmin on repeat, got %v", err)
	}
}

func TestUserService_Promote_Forbidden_BeforeLookup(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	member := seedUser(repo, "member-1", domain.RoleUser)
	seedUser(repo, "member-2", domain.RoleUser)

	if _, err := svc.Promote(context.Background(), member, "member-2"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Demote(context.Background(), member, "member-2"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	// An unauthorized actor must not trigger a target lookup: the error
	// would otherwise reveal whether the target exists.
	if repo.findByIDCnt != 0 {
		t.Fatalf("target lookup ran %d times for forbidden actor", repo.findByIDCnt)
	}
}

func TestUserService_Promote_SelfTarget(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(repo, "admin-1", domain.RoleUser|domain.RoleAdmin)

	if _, err := svc.Promote(context.Background(), admin, "admin-1"); err != domain.ErrSelfTarget {
		t.Fatalf("expected ErrSelfTarget, got %v", err)
	}
	if _, err := svc.Demote(context.Background(), admin, "admin-1"); err != domain.ErrSelfTarget {
		t.Fatalf("expected ErrSelfTarget, got %v", err)
	}
}

func TestUserService_Promote_TargetNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(repo, "admin-1", domain.RoleUser|domain.RoleAdmin)

	if _, err := svc.Promote(context.Background(), admin, "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Demote_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(repo, "admin-1", domain.RoleUser|domain.RoleAdmin)
	seedUser(repo, "admin-2", domain.RoleUser|domain.RoleAdmin)

	id, err := svc.Demote(context.Background(), admin, "admin-2")
	if err != nil {
		t.Fatalf("Demote returned error: %v", err)
	}
	if id != "admin-2" {
		t.Fatalf("unexpected target id: %s", id)
	}
	if repo.updated.IsAdmin() {
		t.Fatalf("ADMIN still present after demote: %b", repo.updated)
	}
	if !repo.updated.Has(domain.RoleUser) {
		t.Fatalf("demote must leave a non-empty role set")
	}
}

func TestUserService_Demote_NotAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(repo, "admin-1", domain.RoleUser|domain.RoleAdmin)
	seedUser(repo, "member-1", domain.RoleUser)

	if _, err := svc.Demote(context.Background(), admin, "member-1"); err != domain.ErrNotAdmin {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
}
