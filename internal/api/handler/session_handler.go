package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/synchome/apartment-system/internal/api/metrics"
	"github.com/synchome/apartment-system/internal/api/session"
	"github.com/synchome/apartment-system/internal/core/ports"
)

// SessionHandler issues and clears the SyncHome session cookie.
type SessionHandler struct {
	sessions   ports.SessionService
	production bool
}

func NewSessionHandler(sessions ports.SessionService, production bool) *SessionHandler {
	return &SessionHandler{sessions: sessions, production: production}
}

type sessionResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// Login mints a session token for an identified user and sets it as an
// HTTP-only cookie. The caller has already completed sign-in with the
// external identity provider; the payload is embedded in the token as-is.
//
// @Summary      Create a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Login payload, at least {email}"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/auth/session [post]
func (h *SessionHandler) Login(c echo.Context) error {
	payload := map[string]any{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.sessions.Issue(payload)
	if err != nil {
		return err
	}

	c.SetCookie(session.New(token, h.production))
	metrics.SessionsIssuedTotal.Inc()

	return c.JSON(http.StatusOK, sessionResponse{Message: "user verified"})
}

// Logout clears the session cookie. The token itself is not revoked
// server-side; security relies on cookie removal and natural expiry.
//
// @Summary      End the session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/v1/auth/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	c.SetCookie(session.Expired(h.production))
	return c.JSON(http.StatusOK, sessionResponse{Message: "logout successful"})
}
