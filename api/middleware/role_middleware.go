package middleware

import (
	"fmt"
	"net/http"

	"legalconnect/internal/entity"

	"github.com/labstack/echo/v4"
)

// RequireRole rejects with 403 when the authenticated account's role is
// outside the allowed set. Distinct from authentication failures, which
// are 401s raised by RequireAuth.
func RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			currentRole, ok := RoleFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden: no user role identified")
			}
			for _, role := range roles {
				if currentRole == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("Forbidden: role '%s' is not authorized to access this resource", currentRole))
		}
	}
}
