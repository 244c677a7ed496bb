package ports

import (
	"context"

	"github.com/salonelidia/salon-system/internal/core/domain"
)

// UserRepository defines the persistence needed to authenticate and provision
// accounts.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
