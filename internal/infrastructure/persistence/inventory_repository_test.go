package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/stayhub/backend/internal/domain/inventory"
	"github.com/stayhub/backend/internal/domain/shared"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestFindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormInventoryRepository(db)
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "category", "current_stock", "min_stock", "reorder_level"}).
			AddRow(id, "Bath Towels", "linen", 24, 5, 10)
		mock.ExpectQuery(`SELECT \* FROM "inventory_items"`).
			WithArgs(id, 1).
			WillReturnRows(rows)

		item, err := repo.FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Bath Towels", item.Name)
		assert.Equal(t, 24, item.CurrentStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found maps to domain error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "inventory_items"`).
			WithArgs(id, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByID(context.Background(), id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormInventoryRepository(db)
	id := uuid.New()

	t.Run("deletes existing row", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "inventory_items"`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(context.Background(), id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "inventory_items"`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Delete(context.Background(), id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindLowStock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormInventoryRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "current_stock", "min_stock", "reorder_level"}).
		AddRow(uuid.New(), "Hand Soap", 2, 5, 0).
		AddRow(uuid.New(), "Bath Towels", 8, 5, 10)
	mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE current_stock <=`).
		WillReturnRows(rows)

	items, err := repo.FindLowStock(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountWithSearch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormInventoryRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "inventory_items"`).
		WithArgs("%tow%", "%tow%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	filter := shared.DefaultFilter()
	filter.Search = "tow"
	count, err := repo.Count(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovementSave(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormMovementRepository(db)

	item := uuid.New()
	mv := &inventory.Movement{
		BaseEntity:    shared.NewBaseEntity(),
		ItemID:        item,
		Type:          inventory.MovementOut,
		Quantity:      3,
		PreviousStock: 10,
		NewStock:      7,
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "stock_movements"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), mv))
	assert.NoError(t, mock.ExpectationsWereMet())
}
