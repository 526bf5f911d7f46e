package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/stayhub/backend/internal/domain/shared"
)

// Repository persists inventory items
type Repository interface {
	shared.Repository[Item]
	FindByCategory(ctx context.Context, category Category, filter shared.Filter) ([]Item, error)
	FindLowStock(ctx context.Context) ([]Item, error)
	// ApplyMovement loads the item under a row lock, applies the stock
	// change and appends the ledger entry in one transaction. The lock
	// serializes concurrent movements so the insufficient-stock check
	// always sees the latest quantity.
	ApplyMovement(ctx context.Context, itemID uuid.UUID, apply func(*Item) (*Movement, error)) (*Item, *Movement, error)
}

// MovementRepository persists stock movement ledger entries
type MovementRepository interface {
	FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]Movement, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Movement, error)
	Save(ctx context.Context, movement *Movement) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
