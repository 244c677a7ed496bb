package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/salonelidia/salon-system/internal/api/metrics"
	"github.com/salonelidia/salon-system/internal/core/domain"
	"github.com/salonelidia/salon-system/internal/core/ports"
)

// IdentityKey is the echo context key holding the verified domain.Identity.
const IdentityKey = "identity"

// Auth verifies the bearer token and injects the identity into context.
// A request without a bearer token gets 401; a token that fails verification
// gets 403.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))

			identity, err := verifier.Verify(token)
			if err != nil {
				if errors.Is(err, domain.ErrMissingToken) {
					metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "missing token").SetInternal(err)
				}
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid token").SetInternal(err)
			}

			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity stored by Auth.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(IdentityKey).(domain.Identity)
	return identity, ok
}

// bearerToken extracts <token> from "Bearer <token>". Any other header shape
// counts as no token at all.
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
