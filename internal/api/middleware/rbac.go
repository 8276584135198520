package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRoles rejects callers whose role claim is not in the allowed set.
// Must run after Auth, which injects the role into the context.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Access denied. Admins only.")
			}
			return next(c)
		}
	}
}
