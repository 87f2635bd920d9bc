package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/shared"
	"github.com/packerp/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPendingOrder(t *testing.T, db *gorm.DB, lineCount int) (*trade.Order, []trade.OrderProduct) {
	t.Helper()

	order, err := trade.NewOrder("ACME Retail")
	require.NoError(t, err)
	require.NoError(t, db.Omit("Lines").Create(order).Error)

	lines := make([]trade.OrderProduct, 0, lineCount)
	for i := 0; i < lineCount; i++ {
		line, err := trade.NewOrderProduct(order.ID, uuid.New(), 10+i, decimal.NewFromFloat(2.50))
		require.NoError(t, err)
		require.NoError(t, db.Create(line).Error)
		lines = append(lines, *line)
	}
	return order, lines
}

func TestGormOrderRepository_FindPendingWithLines(t *testing.T) {
	ctx := context.Background()

	t.Run("loads the pending order with its lines", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormOrderRepository(db)

		order, lines := seedPendingOrder(t, db, 3)

		found, err := repo.FindPendingWithLines(ctx)
		require.NoError(t, err)
		assert.Equal(t, order.ID, found.ID)
		assert.Equal(t, trade.OrderStatusPending, found.Status)
		require.Len(t, found.Lines, 3)
		for i, line := range found.Lines {
			assert.Equal(t, lines[i].ID, line.ID)
			assert.Equal(t, lines[i].Number, line.Number)
		}
	})

	t.Run("ignores submitted orders", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormOrderRepository(db)

		order, _ := seedPendingOrder(t, db, 1)
		require.NoError(t, order.Submit())
		require.NoError(t, repo.Save(ctx, order))

		_, err := repo.FindPendingWithLines(ctx)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("save does not cascade into lines", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormOrderRepository(db)
		lineRepo := NewGormOrderProductRepository(db)

		order, lines := seedPendingOrder(t, db, 2)

		loaded, err := repo.FindActiveByIDWithLines(ctx, order.ID)
		require.NoError(t, err)
		loaded.Lines[0].Number = 999

		require.NoError(t, repo.Save(ctx, loaded))

		line, err := lineRepo.FindActiveByID(ctx, lines[0].ID)
		require.NoError(t, err)
		assert.Equal(t, lines[0].Number, line.Number)
	})
}

func TestGormOrderProductRepository_FindActiveByOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderProductRepository(db)
	ctx := context.Background()

	order, lines := seedPendingOrder(t, db, 3)

	removed := lines[1]
	removed.MarkDeleted()
	require.NoError(t, repo.Save(ctx, &removed))

	found, err := repo.FindActiveByOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, lines[0].ID, found[0].ID)
	assert.Equal(t, lines[2].ID, found[1].ID)
}

func TestGormInvoiceRepository_NextInvoiceNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()

	t.Run("starts at one on an empty table", func(t *testing.T) {
		next, err := repo.NextInvoiceNumber(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), next)
	})

	t.Run("advances past the highest issued number", func(t *testing.T) {
		invoice, err := trade.NewInvoice(41)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, invoice))

		next, err := repo.NextInvoiceNumber(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(42), next)
	})
}
