package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/identity-api/internal/core/domain"
)

// RBAC enforces role-based access control. Role names are compared by
// canonical key, so "Admin" and "ADMIN" are the same role.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[domain.CanonicalRoleName(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get(CtxRoles).([]string)
			for _, r := range roles {
				if _, ok := allowed[domain.CanonicalRoleName(r)]; ok {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
	}
}
