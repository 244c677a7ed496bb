package ports

import (
	"context"

	"github.com/salonelidia/salon-system/internal/core/domain"
)

// TokenVerifier turns a bearer token into an Identity.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

type AuthService interface {
	TokenVerifier
	Authenticate(ctx context.Context, username, password string) (*domain.Session, error)
	Authorize(identity domain.Identity, required domain.Role) error
}
