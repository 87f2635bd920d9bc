package persistence

import (
	"testing"

	"github.com/packerp/backend/internal/domain/catalog"
	"github.com/packerp/backend/internal/domain/stock"
	"github.com/packerp/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalog.Plate{},
		&catalog.Carton{},
		&catalog.Package{},
		&catalog.Product{},
		&trade.Order{},
		&trade.OrderProduct{},
		&trade.Invoice{},
		&trade.InvoiceOrderProduct{},
		&stock.ManufacturedProduct{},
	)
	require.NoError(t, err)

	return db
}

// seedConsumptionChain persists a plate, carton, package and product
// wired together, and returns them
func seedConsumptionChain(t *testing.T, db *gorm.DB) (*catalog.Product, *catalog.Package, *catalog.Plate, *catalog.Carton) {
	t.Helper()

	plate, err := catalog.NewPlate("aluminum plate", 60)
	require.NoError(t, err)
	require.NoError(t, db.Create(plate).Error)

	carton, err := catalog.NewCarton("shipping carton", "40x30", decimal.NewFromFloat(1.20), 40)
	require.NoError(t, err)
	require.NoError(t, db.Create(carton).Error)

	pkg, err := catalog.NewPackage("cream jar 50ml", "50ml", decimal.NewFromFloat(0.80), 70, 12, plate.ID, carton.ID)
	require.NoError(t, err)
	require.NoError(t, db.Create(pkg).Error)

	product, err := catalog.NewProduct("face cream 50ml", decimal.NewFromFloat(9.90), 100, pkg.ID)
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)

	return product, pkg, plate, carton
}
