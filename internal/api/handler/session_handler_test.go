package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/synchome/apartment-system/internal/api/session"
	"github.com/synchome/apartment-system/internal/core/domain"
	"github.com/synchome/apartment-system/internal/core/ports"
)

type stubSessionService struct {
	issueFn func(payload map[string]any) (string, error)
}

func (s *stubSessionService) Issue(payload map[string]any) (string, error) {
	return s.issueFn(payload)
}

func (s *stubSessionService) Verify(_ string) (ports.Claims, error) {
	return nil, domain.ErrUnauthorized
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestSessionHandler_Login_Development(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		issueFn: func(payload map[string]any) (string, error) {
			if payload["email"] != "alice@example.com" {
				t.Fatalf("unexpected payload: %+v", payload)
			}
			return "token123", nil
		},
	}
	handler := NewSessionHandler(stub, false)

	req := httptest.NewRequest(http.MethodPost, "/auth/session", strings.NewReader(`{"email":"alice@example.com","name":"Alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := findCookie(t, rec, session.CookieName)
	if cookie.Value != "token123" {
		t.Fatalf("unexpected cookie value: %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
	if cookie.Secure {
		t.Fatalf("development cookie must not be Secure")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected SameSite=Lax, got %v", cookie.SameSite)
	}
	if cookie.MaxAge != int(session.TokenTTL.Seconds()) {
		t.Fatalf("expected max-age %d, got %d", int(session.TokenTTL.Seconds()), cookie.MaxAge)
	}
	if cookie.Path != "/" {
		t.Fatalf("expected path /, got %q", cookie.Path)
	}
}

func TestSessionHandler_Login_Production(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		issueFn: func(map[string]any) (string, error) { return "token123", nil },
	}
	handler := NewSessionHandler(stub, true)

	req := httptest.NewRequest(http.MethodPost, "/auth/session", strings.NewReader(`{"email":"alice@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	cookie := findCookie(t, rec, session.CookieName)
	if !cookie.Secure {
		t.Fatalf("production cookie must be Secure")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("expected SameSite=Strict, got %v", cookie.SameSite)
	}
	if !cookie.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
}

func TestSessionHandler_Login_MissingEmail(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		issueFn: func(map[string]any) (string, error) { return "", domain.ErrMissingEmail },
	}
	handler := NewSessionHandler(stub, false)

	req := httptest.NewRequest(http.MethodPost, "/auth/session", strings.NewReader(`{"name":"NoEmail"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); !errors.Is(err, domain.ErrMissingEmail) {
		t.Fatalf("expected ErrMissingEmail, got %v", err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no cookie may be set on failure")
	}
}

func TestSessionHandler_Logout(t *testing.T) {
	e := echo.New()
	handler := NewSessionHandler(&stubSessionService{}, true)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := findCookie(t, rec, session.CookieName)
	if cookie.Value != "" {
		t.Fatalf("expected empty value, got %q", cookie.Value)
	}
	if cookie.MaxAge >= 0 {
		t.Fatalf("expected negative max-age, got %d", cookie.MaxAge)
	}
	// Clearing only works when the attributes match the issued cookie.
	if !cookie.Secure || cookie.SameSite != http.SameSiteStrictMode || !cookie.HttpOnly {
		t.Fatalf("clearing cookie attributes must match the issued cookie: %+v", cookie)
	}
}
