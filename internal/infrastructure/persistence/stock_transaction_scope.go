package persistence

import (
	"context"

	appstock "github.com/packerp/backend/internal/application/stock"
	"github.com/packerp/backend/internal/domain/catalog"
	"github.com/packerp/backend/internal/domain/stock"
	"github.com/packerp/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appstock.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// Products returns the product repository scoped to the current transaction
func (r *gormTransactionalRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// Packages returns the package repository scoped to the current transaction
func (r *gormTransactionalRepositories) Packages() catalog.PackageRepository {
	return NewGormPackageRepository(r.tx)
}

// Plates returns the plate repository scoped to the current transaction
func (r *gormTransactionalRepositories) Plates() catalog.PlateRepository {
	return NewGormPlateRepository(r.tx)
}

// Cartons returns the carton repository scoped to the current transaction
func (r *gormTransactionalRepositories) Cartons() catalog.CartonRepository {
	return NewGormCartonRepository(r.tx)
}

// OrderProducts returns the order line repository scoped to the current transaction
func (r *gormTransactionalRepositories) OrderProducts() trade.OrderProductRepository {
	return NewGormOrderProductRepository(r.tx)
}

// ManufacturedProducts returns the production audit repository scoped to the current transaction
func (r *gormTransactionalRepositories) ManufacturedProducts() stock.ManufacturedProductRepository {
	return NewGormManufacturedProductRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ appstock.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ appstock.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
