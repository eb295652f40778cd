package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ahmedshaban022/revelop-calendar/internal/core/ports"
)

// RequireSession gates the admin routes on an authenticated session and
// injects the operator's email into the request context.
func RequireSession(sessions ports.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := sessions.Current()
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			c.Set("operator_email", session.User.Email)
			return next(c)
		}
	}
}
