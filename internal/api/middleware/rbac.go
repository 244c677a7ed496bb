package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonelidia/salon-system/internal/core/domain"
	"github.com/salonelidia/salon-system/internal/core/service"
)

// RequireRole admits only identities whose role is exactly required. It must
// run after Auth.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token").SetInternal(domain.ErrMissingToken)
			}
			if err := service.Authorize(identity, required); err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden").SetInternal(err)
			}
			return next(c)
		}
	}
}
