package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cartowiki/webapp/internal/api/middleware"
	"github.com/cartowiki/webapp/internal/core/domain"
)

// ctxPrincipal extracts the caller identity injected by the Auth middleware
// and fast-fails before any service call: a username proves the middleware
// ran and the subject resolved to a live account.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, _ := c.Get(middleware.PrincipalKey).(domain.Principal)
	if principal.Username == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}
