package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stayhub/backend/internal/domain/shared/valueobject"
)

func newTestItem(t *testing.T, current, minStock, reorderLevel int) *Item {
	t.Helper()
	cost, err := valueobject.NewMoneyFromFloat(1500, "NGN")
	require.NoError(t, err)
	item, err := NewItem(NewItemParams{
		Name:         "Bath Towels",
		Category:     CategoryLinen,
		CurrentStock: current,
		MinStock:     minStock,
		ReorderLevel: reorderLevel,
		Unit:         "pcs",
		UnitCost:     cost,
	})
	require.NoError(t, err)
	item.ClearDomainEvents()
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		cost, _ := valueobject.NewMoneyFromFloat(250, "NGN")
		item, err := NewItem(NewItemParams{
			Name:         "Hand Soap",
			Category:     CategoryToiletries,
			CurrentStock: 40,
			MinStock:     10,
			Unit:         "bottles",
			UnitCost:     cost,
		})
		require.NoError(t, err)
		assert.Equal(t, "Hand Soap", item.Name)
		assert.NotEmpty(t, item.ItemNumber)
		assert.Equal(t, 1, item.GetVersion())
		assert.Len(t, item.GetDomainEvents(), 1)
		assert.Equal(t, EventItemCreated, item.GetDomainEvents()[0].EventType())
	})

	t.Run("explicit item number preserved", func(t *testing.T) {
		cost, _ := valueobject.NewMoneyFromFloat(250, "NGN")
		item, err := NewItem(NewItemParams{
			ItemNumber: "INV-TOWEL-01",
			Name:       "Bath Towels",
			Category:   CategoryLinen,
			UnitCost:   cost,
		})
		require.NoError(t, err)
		assert.Equal(t, "INV-TOWEL-01", item.ItemNumber)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		cost, _ := valueobject.NewMoneyFromFloat(250, "NGN")
		_, err := NewItem(NewItemParams{Name: "  ", Category: CategoryToiletries, UnitCost: cost})
		assert.Error(t, err)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		cost, _ := valueobject.NewMoneyFromFloat(250, "NGN")
		_, err := NewItem(NewItemParams{Name: "Hand Soap", Category: Category("snacks"), UnitCost: cost})
		assert.Error(t, err)
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		cost, _ := valueobject.NewMoneyFromFloat(250, "NGN")
		_, err := NewItem(NewItemParams{Name: "Hand Soap", Category: CategoryToiletries, CurrentStock: -1, UnitCost: cost})
		assert.Error(t, err)
	})
}

func TestItemStatus(t *testing.T) {
	tests := []struct {
		name    string
		current int
		min     int
		reorder int
		want    Status
	}{
		{"above threshold", 50, 5, 10, StatusInStock},
		{"exactly at reorder level", 10, 5, 10, StatusLowStock},
		{"below reorder level", 7, 5, 10, StatusLowStock},
		{"min stock used when reorder unset", 5, 5, 0, StatusLowStock},
		{"zero stock", 0, 5, 10, StatusOutOfStock},
		{"zero stock zero thresholds", 0, 0, 0, StatusOutOfStock},
		{"one above zero thresholds", 1, 0, 0, StatusInStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := newTestItem(t, tt.current, tt.min, tt.reorder)
			assert.Equal(t, tt.want, item.Status())
		})
	}

	t.Run("on order takes precedence", func(t *testing.T) {
		item := newTestItem(t, 0, 5, 10)
		item.MarkOnOrder()
		assert.Equal(t, StatusOnOrder, item.Status())
	})
}

func TestReceiveStock(t *testing.T) {
	item := newTestItem(t, 5, 2, 10)
	actor := uuid.New()

	mv, err := item.ReceiveStock(20, "monthly restock", actor)
	require.NoError(t, err)
	assert.Equal(t, 25, item.CurrentStock)
	assert.Equal(t, MovementIn, mv.Type)
	assert.Equal(t, 5, mv.PreviousStock)
	assert.Equal(t, 25, mv.NewStock)
	assert.Equal(t, StatusInStock, item.Status())

	_, err = item.ReceiveStock(0, "", actor)
	assert.Error(t, err)
	_, err = item.ReceiveStock(-3, "", actor)
	assert.Error(t, err)
}

func TestReceiveStockClearsOnOrder(t *testing.T) {
	item := newTestItem(t, 0, 2, 10)
	item.MarkOnOrder()

	_, err := item.ReceiveStock(30, "order delivered", uuid.New())
	require.NoError(t, err)
	assert.False(t, item.OnOrder)
	assert.Equal(t, StatusInStock, item.Status())
}

func TestWithdrawStock(t *testing.T) {
	actor := uuid.New()

	t.Run("successful withdrawal", func(t *testing.T) {
		item := newTestItem(t, 30, 2, 10)
		mv, err := item.WithdrawStock(12, "room turnover", actor)
		require.NoError(t, err)
		assert.Equal(t, 18, item.CurrentStock)
		assert.Equal(t, MovementOut, mv.Type)
		assert.Equal(t, 30, mv.PreviousStock)
		assert.Equal(t, 18, mv.NewStock)
	})

	t.Run("withdrawal exceeding stock is rejected", func(t *testing.T) {
		item := newTestItem(t, 10, 2, 5)
		_, err := item.WithdrawStock(11, "", actor)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.Equal(t, 10, item.CurrentStock, "stock must not change on rejection")
		assert.Empty(t, item.GetDomainEvents())
	})

	t.Run("withdrawal of exact remaining stock succeeds", func(t *testing.T) {
		item := newTestItem(t, 10, 2, 5)
		_, err := item.WithdrawStock(10, "", actor)
		require.NoError(t, err)
		assert.Equal(t, 0, item.CurrentStock)
		assert.Equal(t, StatusOutOfStock, item.Status())
	})

	t.Run("low stock event raised at threshold", func(t *testing.T) {
		item := newTestItem(t, 15, 2, 10)
		_, err := item.WithdrawStock(5, "", actor)
		require.NoError(t, err)

		var found bool
		for _, evt := range item.GetDomainEvents() {
			if evt.EventType() == EventLowStock {
				found = true
			}
		}
		assert.True(t, found)
	})
}

func TestAdjustStock(t *testing.T) {
	actor := uuid.New()

	t.Run("adjustment records delta", func(t *testing.T) {
		item := newTestItem(t, 20, 2, 5)
		mv, err := item.AdjustStock(17, "cycle count", actor)
		require.NoError(t, err)
		assert.Equal(t, 17, item.CurrentStock)
		assert.Equal(t, MovementAdjustment, mv.Type)
		assert.Equal(t, 3, mv.Quantity)
		assert.Equal(t, 20, mv.PreviousStock)
		assert.Equal(t, 17, mv.NewStock)
	})

	t.Run("negative target rejected", func(t *testing.T) {
		item := newTestItem(t, 20, 2, 5)
		_, err := item.AdjustStock(-1, "", actor)
		assert.Error(t, err)
	})

	t.Run("no-op adjustment rejected", func(t *testing.T) {
		item := newTestItem(t, 20, 2, 5)
		_, err := item.AdjustStock(20, "", actor)
		assert.Error(t, err)
	})
}

func TestItemTotalValue(t *testing.T) {
	item := newTestItem(t, 4, 1, 2)
	assert.Equal(t, "6000.00 NGN", item.TotalValue().String())
}
