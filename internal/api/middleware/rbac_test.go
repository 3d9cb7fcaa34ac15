package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/synchome/apartment-system/internal/core/domain"
)

type stubRoleSource struct {
	roles map[string]string
	err   error
}

func (s *stubRoleSource) RoleByEmail(_ context.Context, email string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	role, ok := s.roles[email]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return role, nil
}

func TestRequireRole_Allows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextEmail, "admin@example.com")

	src := &stubRoleSource{roles: map[string]string{"admin@example.com": domain.RoleAdmin}}

	called := false
	mw := RequireRole(src, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextEmail, "resident@example.com")

	src := &stubRoleSource{roles: map[string]string{"resident@example.com": domain.RoleResident}}

	mw := RequireRole(src, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_UnknownUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextEmail, "ghost@example.com")

	src := &stubRoleSource{roles: map[string]string{}}

	mw := RequireRole(src, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	// Missing user is a denial, never a pass.
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_NoSessionIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	src := &stubRoleSource{roles: map[string]string{}}

	mw := RequireRole(src, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRole_StoreFailure(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextEmail, "admin@example.com")

	src := &stubRoleSource{err: errors.New("connection reset")}

	mw := RequireRole(src, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if err == nil {
		t.Fatalf("expected error to propagate")
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		t.Fatalf("store failure must not be rewritten, got %v", he)
	}
}

func TestRequireRole_FreshRoleEachRequest(t *testing.T) {
	e := echo.New()
	src := &stubRoleSource{roles: map[string]string{"carol@example.com": domain.RoleResident}}
	mw := RequireRole(src, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	run := func() int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(ContextEmail, "carol@example.com")
		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec.Code
	}

	if code := run(); code != http.StatusForbidden {
		t.Fatalf("expected 403 before promotion, got %d", code)
	}

	// Promotion in the store takes effect on the very next request.
	src.roles["carol@example.com"] = domain.RoleAdmin
	if code := run(); code != http.StatusOK {
		t.Fatalf("expected 200 after promotion, got %d", code)
	}
}
