package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/purplemerit/account-service/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a non-empty user id proves the
// middleware ran on this route.
func ctxIdentity(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	r, _ := c.Get("role").(string)
	return userID, domain.Role(r), nil
}
