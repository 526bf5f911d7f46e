package inventory

import (
	"github.com/google/uuid"

	"github.com/stayhub/backend/internal/domain/shared"
)

// MovementType describes the direction of a stock movement
type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
)

// IsValid reports whether the movement type is known
func (t MovementType) IsValid() bool {
	switch t {
	case MovementIn, MovementOut, MovementAdjustment:
		return true
	}
	return false
}

// Movement is an immutable ledger entry recording a stock change.
// Entries are append-only; corrections are made with compensating
// adjustments, never by editing history.
type Movement struct {
	shared.BaseEntity
	ItemID        uuid.UUID    `gorm:"type:uuid;not null;index"`
	Type          MovementType `gorm:"not null;size:16"`
	Quantity      int          `gorm:"not null"`
	Reason        string       `gorm:"size:500"`
	PreviousStock int          `gorm:"not null"`
	NewStock      int          `gorm:"not null"`
	PerformedBy   uuid.UUID    `gorm:"type:uuid"`
}

// TableName returns the database table name
func (Movement) TableName() string {
	return "stock_movements"
}

func newMovement(itemID uuid.UUID, movementType MovementType, quantity int, reason string, previousStock, newStock int, performedBy uuid.UUID) (*Movement, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "item id is required")
	}
	if !movementType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "movement type must be in, out or adjustment")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "quantity must be positive")
	}
	return &Movement{
		BaseEntity:    shared.NewBaseEntity(),
		ItemID:        itemID,
		Type:          movementType,
		Quantity:      quantity,
		Reason:        reason,
		PreviousStock: previousStock,
		NewStock:      newStock,
		PerformedBy:   performedBy,
	}, nil
}
