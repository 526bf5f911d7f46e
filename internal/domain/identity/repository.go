package identity

import (
	"context"

	"github.com/stayhub/backend/internal/domain/shared"
)

// Repository persists users
type Repository interface {
	shared.Repository[User]
	FindByEmail(ctx context.Context, email string) (*User, error)
}
