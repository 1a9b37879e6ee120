package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/promobeats/backoffice/internal/core/ports"
)

// Context keys populated by Auth.
const (
	KeyAccountID = "account_id"
	KeyEmail     = "email"
	KeyRoles     = "roles"
)

// Auth validates the bearer token and injects the caller's identity and role
// keys into context.
func Auth(signer ports.TokenSigner) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := signer.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(KeyAccountID, stringClaim(claims, "sub"))
			c.Set(KeyEmail, stringClaim(claims, "email"))
			c.Set(KeyRoles, rolesClaim(claims))

			return next(c)
		}
	}
}

func stringClaim(claims map[string]any, key string) string {
	s, _ := claims[key].(string)
	return s
}

// rolesClaim normalizes the roles claim, which decodes as []any after a JWT
// round trip.
func rolesClaim(claims map[string]any) []string {
	switch v := claims["roles"].(type) {
	case []string:
		return v
	case []any:
		roles := make([]string, 0, len(v))
		for _, r := range v {
			if s, ok := r.(string); ok {
				roles = append(roles, s)
			}
		}
		return roles
	default:
		return nil
	}
}
