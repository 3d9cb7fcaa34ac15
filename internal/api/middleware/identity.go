package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/synchome/apartment-system/internal/api/metrics"
)

// MatchIdentity confirms the email asserted in the request's query string
// matches the authenticated token identity. Routes that take the target
// email as a parameter would otherwise let a caller holding a valid token
// for user A query data while claiming to be user B.
//
// Must run after Session.
func MatchIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(ContextEmail).(string)
			if email == "" || c.QueryParam("email") != email {
				metrics.AuthRejectionsTotal.WithLabelValues("identity").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}
			return next(c)
		}
	}
}
