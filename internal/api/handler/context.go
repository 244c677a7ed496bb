package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonelidia/salon-system/internal/api/middleware"
	"github.com/salonelidia/salon-system/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fails fast before any service call when it is absent or has no subject.
// Handlers scope every read to this id and never to one taken from the
// request.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok || identity.UserID <= 0 {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
