package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces a role allow-list on requests that already passed Auth.
// An empty allow-list means any authenticated subject: presence of a role in
// context is required, its value is not inspected.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if len(allowed) > 0 {
				if _, ok := allowed[role]; !ok {
					return echo.NewHTTPError(http.StatusForbidden, "forbidden")
				}
			}
			return next(c)
		}
	}
}
