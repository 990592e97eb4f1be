package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/upturn/portfolio-api/internal/core/ports"
)

// Admin permits continuation only when the stored role for the verified email
// is "admin". It must run after Auth; the router enforces that ordering. A
// missing email claim resolves to an unknown user and is rejected the same
// way as a non-admin.
func Admin(users ports.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(EmailContextKey).(string)

			isAdmin, err := users.IsAdmin(c.Request().Context(), email)
			if err != nil {
				return err
			}
			if !isAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden access")
			}

			return next(c)
		}
	}
}
