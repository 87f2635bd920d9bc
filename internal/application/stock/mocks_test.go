package stock

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/packerp/backend/internal/domain/catalog"
	"github.com/packerp/backend/internal/domain/shared"
	"github.com/packerp/backend/internal/domain/stock"
	"github.com/packerp/backend/internal/domain/trade"
)

// MockEventPublisher is a mock implementation of shared.EventPublisher
type MockEventPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{
		events: make([]shared.DomainEvent, 0),
	}
}

func (m *MockEventPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
	return nil
}

func (m *MockEventPublisher) GetEvents() []shared.DomainEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]shared.DomainEvent, len(m.events))
	copy(result, m.events)
	return result
}

func (m *MockEventPublisher) GetEventsByType(eventType string) []shared.DomainEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]shared.DomainEvent, 0)
	for _, e := range m.events {
		if e.EventType() == eventType {
			result = append(result, e)
		}
	}
	return result
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindActiveByPackage(ctx context.Context, packageID uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllActive(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(bool), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) SaveWithLock(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) CountActive(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockPackageRepository is a mock implementation of catalog.PackageRepository
type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*catalog.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Package), args.Error(1)
}

func (m *MockPackageRepository) FindAllActive(ctx context.Context, filter shared.Filter) ([]catalog.Package, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Package), args.Error(1)
}

func (m *MockPackageRepository) ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(bool), args.Error(1)
}

func (m *MockPackageRepository) Save(ctx context.Context, pkg *catalog.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) SaveWithLock(ctx context.Context, pkg *catalog.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) CountActive(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockPlateRepository is a mock implementation of catalog.PlateRepository
type MockPlateRepository struct {
	mock.Mock
}

func (m *MockPlateRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*catalog.Plate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Plate), args.Error(1)
}

func (m *MockPlateRepository) ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(bool), args.Error(1)
}

func (m *MockPlateRepository) Save(ctx context.Context, plate *catalog.Plate) error {
	args := m.Called(ctx, plate)
	return args.Error(0)
}

func (m *MockPlateRepository) SaveWithLock(ctx context.Context, plate *catalog.Plate) error {
	args := m.Called(ctx, plate)
	return args.Error(0)
}

// MockCartonRepository is a mock implementation of catalog.CartonRepository
type MockCartonRepository struct {
	mock.Mock
}

func (m *MockCartonRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*catalog.Carton, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Carton), args.Error(1)
}

func (m *MockCartonRepository) ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(bool), args.Error(1)
}

func (m *MockCartonRepository) Save(ctx context.Context, carton *catalog.Carton) error {
	args := m.Called(ctx, carton)
	return args.Error(0)
}

func (m *MockCartonRepository) SaveWithLock(ctx context.Context, carton *catalog.Carton) error {
	args := m.Called(ctx, carton)
	return args.Error(0)
}

// MockOrderProductRepository is a mock implementation of trade.OrderProductRepository
type MockOrderProductRepository struct {
	mock.Mock
}

func (m *MockOrderProductRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*trade.OrderProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.OrderProduct), args.Error(1)
}

func (m *MockOrderProductRepository) FindActiveByOrder(ctx context.Context, orderID uuid.UUID) ([]trade.OrderProduct, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]trade.OrderProduct), args.Error(1)
}

func (m *MockOrderProductRepository) ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(bool), args.Error(1)
}

func (m *MockOrderProductRepository) Save(ctx context.Context, line *trade.OrderProduct) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

// MockManufacturedProductRepository is a mock implementation of stock.ManufacturedProductRepository
type MockManufacturedProductRepository struct {
	mock.Mock
}

func (m *MockManufacturedProductRepository) Create(ctx context.Context, record *stock.ManufacturedProduct) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockManufacturedProductRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]stock.ManufacturedProduct, error) {
	args := m.Called(ctx, productID, filter)
	return args.Get(0).([]stock.ManufacturedProduct), args.Error(1)
}

func (m *MockManufacturedProductRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

// MockStockReportNotifier is a mock implementation of StockReportNotifier
type MockStockReportNotifier struct {
	mock.Mock
}

func (m *MockStockReportNotifier) NotifyStockReport(ctx context.Context, report []ProductStockReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

// testRepos bundles the mocks behind a NoOpTransactionScope
type testRepos struct {
	products      *MockProductRepository
	packages      *MockPackageRepository
	plates        *MockPlateRepository
	cartons       *MockCartonRepository
	orderProducts *MockOrderProductRepository
	manufactured  *MockManufacturedProductRepository
}

func newTestRepos() *testRepos {
	return &testRepos{
		products:      new(MockProductRepository),
		packages:      new(MockPackageRepository),
		plates:        new(MockPlateRepository),
		cartons:       new(MockCartonRepository),
		orderProducts: new(MockOrderProductRepository),
		manufactured:  new(MockManufacturedProductRepository),
	}
}

func (r *testRepos) scope() TransactionScope {
	return NewNoOpTransactionScope(r.products, r.packages, r.plates, r.cartons, r.orderProducts, r.manufactured)
}
