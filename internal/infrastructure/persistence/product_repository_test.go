package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/catalog"
	"github.com/packerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormProductRepository_FindActiveByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product, _, _, _ := seedConsumptionChain(t, db)

	t.Run("finds existing product", func(t *testing.T) {
		found, err := repo.FindActiveByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, product.ID, found.ID)
		assert.Equal(t, "face cream 50ml", found.Name)
		assert.Equal(t, 100, found.AvailableQuantity)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindActiveByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("hides soft-deleted product", func(t *testing.T) {
		product.MarkDeleted()
		require.NoError(t, repo.SaveWithLock(ctx, product))

		_, err := repo.FindActiveByID(ctx, product.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_FindActiveByPackage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product, pkg, _, _ := seedConsumptionChain(t, db)

	t.Run("resolves product from its package", func(t *testing.T) {
		found, err := repo.FindActiveByPackage(ctx, pkg.ID)
		require.NoError(t, err)
		assert.Equal(t, product.ID, found.ID)
	})

	t.Run("returns not found for package without product", func(t *testing.T) {
		_, err := repo.FindActiveByPackage(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_SaveWithLock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	t.Run("persists changes when version matches", func(t *testing.T) {
		product, _, _, _ := seedConsumptionChain(t, db)

		product.AdjustAvailable(-25)
		require.NoError(t, repo.SaveWithLock(ctx, product))

		found, err := repo.FindActiveByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 75, found.AvailableQuantity)
		assert.Equal(t, product.Version, found.Version)
	})

	t.Run("rejects stale version", func(t *testing.T) {
		product, _, _, _ := seedConsumptionChain(t, db)

		stale, err := repo.FindActiveByID(ctx, product.ID)
		require.NoError(t, err)

		product.AdjustAvailable(-10)
		require.NoError(t, repo.SaveWithLock(ctx, product))

		stale.AdjustAvailable(-10)
		err = repo.SaveWithLock(ctx, stale)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)

		found, err := repo.FindActiveByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 90, found.AvailableQuantity)
	})
}

func TestGormProductRepository_FindAllActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	_, pkg, _, _ := seedConsumptionChain(t, db)

	second, err := catalog.NewProduct("body lotion 200ml", decimal.NewFromFloat(12.50), 40, pkg.ID)
	require.NoError(t, err)
	require.NoError(t, db.Create(second).Error)

	deleted, err := catalog.NewProduct("discontinued balm", decimal.NewFromFloat(3.00), 5, pkg.ID)
	require.NoError(t, err)
	deleted.MarkDeleted()
	require.NoError(t, db.Create(deleted).Error)

	t.Run("lists only active products", func(t *testing.T) {
		products, err := repo.FindAllActive(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("filters by name search", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "lotion"

		products, err := repo.FindAllActive(ctx, filter)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, second.ID, products[0].ID)
	})

	t.Run("counts active products", func(t *testing.T) {
		count, err := repo.CountActive(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("ignores unknown sort field", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.OrderBy = "name; DROP TABLE products"

		_, err := repo.FindAllActive(ctx, filter)
		require.NoError(t, err)

		count, err := repo.CountActive(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}
