package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/synchome/apartment-system/internal/api/metrics"
	"github.com/synchome/apartment-system/internal/api/session"
	"github.com/synchome/apartment-system/internal/core/ports"
)

// Context keys populated by Session for downstream filters and handlers.
const (
	ContextEmail  = "email"
	ContextClaims = "claims"
)

// Session extracts and verifies the session cookie and injects the decoded
// claims into the request context. A missing cookie and an invalid one are
// rejected identically: the caller learns nothing beyond 401.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("verify").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			claims, err := sessions.Verify(cookie.Value)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("verify").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			c.Set(ContextClaims, claims)
			c.Set(ContextEmail, claims.Email())

			return next(c)
		}
	}
}
