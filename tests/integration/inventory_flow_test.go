package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	inventoryapp "github.com/stayhub/backend/internal/application/inventory"
	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stayhub/backend/internal/infrastructure/persistence"
)

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, ...shared.DomainEvent) error { return nil }

func inventoryService(tdb *TestDB) *inventoryapp.Service {
	items := persistence.NewGormInventoryRepository(tdb.DB)
	movements := persistence.NewGormMovementRepository(tdb.DB)
	return inventoryapp.NewService(items, movements, nopPublisher{}, nil, zap.NewNop())
}

func TestInventoryLifecycle(t *testing.T) {
	tdb := NewTestDB(t)
	svc := inventoryService(tdb)
	ctx := context.Background()
	actor := uuid.New()

	created, err := svc.Create(ctx, inventoryapp.CreateItemRequest{
		Name:         "Bath Towels",
		Category:     "linen",
		CurrentStock: 10,
		MinStock:     2,
		ReorderLevel: 4,
		Unit:         "pcs",
		UnitCost:     2500,
	})
	require.NoError(t, err)
	assert.Equal(t, "in_stock", created.Status)
	assert.NotEmpty(t, created.ItemNumber)

	t.Run("withdrawal over stock is rejected", func(t *testing.T) {
		_, err := svc.RecordMovement(ctx, created.ID, actor, inventoryapp.RecordMovementRequest{
			Type:     "out",
			Quantity: 11,
		})
		require.Error(t, err)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "INSUFFICIENT_STOCK", derr.Code)

		item, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, item.CurrentStock, "failed withdrawal must not change stock")
	})

	t.Run("movements update stock and derived status", func(t *testing.T) {
		_, err := svc.RecordMovement(ctx, created.ID, actor, inventoryapp.RecordMovementRequest{
			Type:     "out",
			Quantity: 7,
			Reason:   "housekeeping restock",
		})
		require.NoError(t, err)

		item, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, item.CurrentStock)
		assert.Equal(t, "low_stock", item.Status)

		low, err := svc.LowStock(ctx)
		require.NoError(t, err)
		require.Len(t, low, 1)
		assert.Equal(t, created.ID, low[0].ID)
	})

	t.Run("ledger records both directions", func(t *testing.T) {
		page, err := svc.Movements(ctx, created.ID, 1, 20)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, 10, page.Items[0].PreviousStock)
		assert.Equal(t, 3, page.Items[0].NewStock)
	})
}

func TestConcurrentWithdrawalsSerialize(t *testing.T) {
	tdb := NewTestDB(t)
	svc := inventoryService(tdb)
	ctx := context.Background()
	actor := uuid.New()

	created, err := svc.Create(ctx, inventoryapp.CreateItemRequest{
		Name:         "Hand Soap",
		Category:     "toiletries",
		CurrentStock: 10,
		UnitCost:     500,
	})
	require.NoError(t, err)

	const workers = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RecordMovement(ctx, created.ID, actor, inventoryapp.RecordMovementRequest{
				Type:     "out",
				Quantity: 3,
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	item, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, item.CurrentStock, 0, "stock must never go negative")
	assert.Equal(t, 10-3*succeeded, item.CurrentStock, "stock reflects exactly the successful withdrawals")
	assert.Equal(t, 3, succeeded, "only three withdrawals of 3 fit into 10")
}

func TestInventorySearchAndStats(t *testing.T) {
	tdb := NewTestDB(t)
	svc := inventoryService(tdb)
	ctx := context.Background()

	names := map[string]string{
		"Bath Towels": "linen",
		"Bed Sheets":  "linen",
		"Kettle":      "kitchen",
	}
	for name, category := range names {
		_, err := svc.Create(ctx, inventoryapp.CreateItemRequest{
			Name:         name,
			Category:     category,
			CurrentStock: 5,
			UnitCost:     1000,
		})
		require.NoError(t, err)
	}

	t.Run("case-insensitive partial search", func(t *testing.T) {
		page, err := svc.List(ctx, inventoryapp.ListQuery{Search: "tow"})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Bath Towels", page.Items[0].Name)
	})

	t.Run("category filter", func(t *testing.T) {
		page, err := svc.List(ctx, inventoryapp.ListQuery{Category: "linen"})
		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
	})

	t.Run("stats aggregate the collection", func(t *testing.T) {
		stats, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalItems)
		assert.Equal(t, "15000.00", stats.TotalValue)
	})
}
