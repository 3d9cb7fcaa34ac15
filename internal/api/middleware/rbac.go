package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/synchome/apartment-system/internal/api/metrics"
	"github.com/synchome/apartment-system/internal/core/domain"
)

// RoleSource resolves the currently persisted role for an email.
type RoleSource interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// RequireRole enforces role-scoped access. The role is re-read from the
// user store on every request so a role change takes effect on the next
// request without re-login. Any denial terminates the chain: an unknown
// user, an empty role and an insufficient role are all rejected.
//
// Must run after Session.
func RequireRole(src RoleSource, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(ContextEmail).(string)
			if email == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("role").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			role, err := src.RoleByEmail(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("role").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
				}
				return err
			}

			if _, ok := allowed[role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			return next(c)
		}
	}
}
