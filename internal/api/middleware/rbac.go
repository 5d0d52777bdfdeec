package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cartowiki/webapp/internal/core/domain"
)

// RBAC rejects callers whose role is not in allowedRoles. It is a coarse
// route-level gate; per-target privilege comparisons stay in the services.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, _ := c.Get(PrincipalKey).(domain.Principal)
			if _, ok := allowed[principal.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
