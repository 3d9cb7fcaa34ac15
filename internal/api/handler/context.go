package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/synchome/apartment-system/internal/api/middleware"
)

// sessionEmail extracts the authenticated identity injected by the Session
// middleware. An empty value means the middleware did not run, treat it as
// an unauthenticated request rather than trusting caller-supplied input.
func sessionEmail(c echo.Context) (string, error) {
	email, _ := c.Get(middleware.ContextEmail).(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
	}
	return email, nil
}

// requireOwnEmail rejects requests whose path email does not match the
// token identity. Used on self-service routes addressed by email.
func requireOwnEmail(c echo.Context, pathEmail string) error {
	email, err := sessionEmail(c)
	if err != nil {
		return err
	}
	if pathEmail != email {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
	}
	return nil
}
