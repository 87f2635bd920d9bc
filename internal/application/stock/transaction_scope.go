package stock

import (
	"context"

	"github.com/packerp/backend/internal/domain/catalog"
	"github.com/packerp/backend/internal/domain/stock"
	"github.com/packerp/backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the repositories a
// stock movement touches. A function executed within the scope sees all
// repository operations as one unit of work: committed together on
// success, rolled back together on error. This is what makes a
// reduction batch all-or-nothing at the persistence level.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all repositories involved
// in stock consumption, scoped to the same underlying transaction.
type TransactionalRepositories interface {
	// Products returns the product repository scoped to the current transaction
	Products() catalog.ProductRepository
	// Packages returns the package repository scoped to the current transaction
	Packages() catalog.PackageRepository
	// Plates returns the plate repository scoped to the current transaction
	Plates() catalog.PlateRepository
	// Cartons returns the carton repository scoped to the current transaction
	Cartons() catalog.CartonRepository
	// OrderProducts returns the order line repository scoped to the current transaction
	OrderProducts() trade.OrderProductRepository
	// ManufacturedProducts returns the production audit repository scoped to the current transaction
	ManufacturedProducts() stock.ManufacturedProductRepository
}

// NoOpTransactionScope runs the function against fixed repositories
// without a real transaction. Useful for tests and for callers that
// manage their own transaction boundary.
type NoOpTransactionScope struct {
	productRepo      catalog.ProductRepository
	packageRepo      catalog.PackageRepository
	plateRepo        catalog.PlateRepository
	cartonRepo       catalog.CartonRepository
	orderProductRepo trade.OrderProductRepository
	manufacturedRepo stock.ManufacturedProductRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	packageRepo catalog.PackageRepository,
	plateRepo catalog.PlateRepository,
	cartonRepo catalog.CartonRepository,
	orderProductRepo trade.OrderProductRepository,
	manufacturedRepo stock.ManufacturedProductRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo:      productRepo,
		packageRepo:      packageRepo,
		plateRepo:        plateRepo,
		cartonRepo:       cartonRepo,
		orderProductRepo: orderProductRepo,
		manufacturedRepo: manufacturedRepo,
	}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Products returns the product repository
func (s *NoOpTransactionScope) Products() catalog.ProductRepository {
	return s.productRepo
}

// Packages returns the package repository
func (s *NoOpTransactionScope) Packages() catalog.PackageRepository {
	return s.packageRepo
}

// Plates returns the plate repository
func (s *NoOpTransactionScope) Plates() catalog.PlateRepository {
	return s.plateRepo
}

// Cartons returns the carton repository
func (s *NoOpTransactionScope) Cartons() catalog.CartonRepository {
	return s.cartonRepo
}

// OrderProducts returns the order line repository
func (s *NoOpTransactionScope) OrderProducts() trade.OrderProductRepository {
	return s.orderProductRepo
}

// ManufacturedProducts returns the production audit repository
func (s *NoOpTransactionScope) ManufacturedProducts() stock.ManufacturedProductRepository {
	return s.manufacturedRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
