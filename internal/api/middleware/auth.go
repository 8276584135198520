package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/purplemerit/account-service/internal/api/metrics"
	"github.com/purplemerit/account-service/internal/core/ports"
)

// TokenVerifier validates a raw bearer token and returns its claims.
// The auth service satisfies this.
type TokenVerifier interface {
	VerifyToken(token string) (*ports.TokenClaims, error)
}

// Auth extracts the Bearer token, verifies it, and injects the caller's
// identity into the request context. A missing or malformed header is 401;
// a token that fails verification (bad signature, expired) is 400, matching
// the API's historical contract.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access Denied. No token provided.")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access Denied. No token provided.")
			}

			claims, err := verifier.VerifyToken(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid or expired token.")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set("user_id", claims.UserID)
			c.Set("role", string(claims.Role))

			return next(c)
		}
	}
}
