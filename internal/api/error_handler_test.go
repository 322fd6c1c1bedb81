package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/contentory/publishing-api/internal/core/domain"
)

func render(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrSelfTarget, http.StatusUnprocessableEntity},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrPostNotFound, http.StatusNotFound},
		{domain.ErrCategoryNotFound, http.StatusNotFound},
		{domain.ErrAlreadyAdmin, http.StatusConflict},
		{domain.ErrNotAdmin, http.StatusConflict},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrStorageUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		rec := render(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

func TestErrorHandler_WrappedError(t *testing.T) {
	rec := render(t, fmt.Errorf("update roles: %w", domain.ErrUserNotFound))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("wrapped domain error must still map, got %d", rec.Code)
	}
}

func TestErrorHandler_StorageDetailHidden(t *testing.T) {
	rec := render(t, fmt.Errorf("insert user: connection refused at 10.0.0.5:27017: %w", domain.ErrStorageUnavailable))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	// The client sees a generic message, never the connection string.
	if body := rec.Body.String(); strings.Contains(body, "10.0.0.5") || strings.Contains(body, "connection refused") {
		t.Fatalf("internal detail leaked to client: %s", body)
	}
}

func TestErrorHandler_UnknownError(t *testing.T) {
	rec := render(t, fmt.Errorf("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Fatalf("internal error message leaked: %s", rec.Body.String())
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec := render(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
