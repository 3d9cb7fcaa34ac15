package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/synchome/apartment-system/internal/api/session"
	"github.com/synchome/apartment-system/internal/core/domain"
	"github.com/synchome/apartment-system/internal/core/service"
)

// Chains Session, MatchIdentity and RequireRole the way the router wires
// admin routes, and walks a request through the full filter order.
func TestPipeline_AdminChain(t *testing.T) {
	e := echo.New()
	sessions := service.NewSessionService("secret", time.Hour)
	src := &stubRoleSource{roles: map[string]string{
		"admin@example.com":    domain.RoleAdmin,
		"resident@example.com": domain.RoleResident,
	}}

	chain := []echo.MiddlewareFunc{
		Session(sessions),
		MatchIdentity(),
		RequireRole(src, domain.RoleAdmin),
	}
	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		handler = chain[i](handler)
	}

	run := func(email, queryEmail string) int {
		target := "/"
		if queryEmail != "" {
			target = "/?email=" + queryEmail
		}
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if email != "" {
			token, err := sessions.Issue(map[string]any{"email": email})
			if err != nil {
				t.Fatalf("issue token: %v", err)
			}
			req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec.Code
	}

	if code := run("admin@example.com", "admin@example.com"); code != http.StatusOK {
		t.Fatalf("admin with matching identity: expected 200, got %d", code)
	}
	if code := run("", ""); code != http.StatusUnauthorized {
		t.Fatalf("no cookie: expected 401, got %d", code)
	}
	if code := run("admin@example.com", "resident@example.com"); code != http.StatusForbidden {
		t.Fatalf("identity mismatch: expected 403, got %d", code)
	}
	if code := run("resident@example.com", "resident@example.com"); code != http.StatusForbidden {
		t.Fatalf("insufficient role: expected 403, got %d", code)
	}
	if code := run("ghost@example.com", "ghost@example.com"); code != http.StatusForbidden {
		t.Fatalf("unknown user: expected 403, got %d", code)
	}
}
