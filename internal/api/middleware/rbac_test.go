package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/contentory/publishing-api/internal/core/domain"
)

func runRequireAdmin(t *testing.T, principal *domain.User) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(PrincipalKey, principal)
	}

	handler := RequireAdmin()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, handler(c)
}

func TestRequireAdmin_AdminPasses(t *testing.T) {
	rec, err := runRequireAdmin(t, &domain.User{ID: "a", Roles: domain.RoleUser | domain.RoleAdmin})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAdmin_MemberForbidden(t *testing.T) {
	_, err := runRequireAdmin(t, &domain.User{ID: "m", Roles: domain.RoleUser})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}
}

func TestRequireAdmin_NoPrincipal(t *testing.T) {
	_, err := runRequireAdmin(t, nil)
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated without principal, got %v", err)
	}
}
