package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/shared"
	"github.com/packerp/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindActiveByID finds a non-deleted order by its ID
func (r *GormOrderRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.db.WithContext(ctx).
		First(&order, "id = ? AND deleted = ?", id, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindActiveByIDWithLines finds a non-deleted order with its lines loaded
func (r *GormOrderRepository) FindActiveByIDWithLines(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Lines", linesInInsertionOrder).
		First(&order, "id = ? AND deleted = ?", id, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindPendingWithLines finds the current pending (cart) order with lines.
// The oldest pending order wins when several exist.
func (r *GormOrderRepository) FindPendingWithLines(ctx context.Context) (*trade.Order, error) {
	var order trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Lines", linesInInsertionOrder).
		Where("status = ? AND deleted = ?", trade.OrderStatusPending, false).
		Order("created_at ASC").
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAllActive finds all non-deleted orders
func (r *GormOrderRepository) FindAllActive(ctx context.Context, filter shared.Filter) ([]trade.Order, error) {
	var orders []trade.Order
	query := r.applyFilter(r.activeQuery(ctx), filter)
	query = applyPagingAndOrder(query, filter, OrderSortFields)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ExistsActiveByID checks whether a non-deleted order exists
func (r *GormOrderRepository) ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trade.Order{}).
		Where("id = ? AND deleted = ?", id, false).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an order
func (r *GormOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Omit("Lines").Save(order).Error
}

// CountActive counts non-deleted orders matching the filter
func (r *GormOrderRepository) CountActive(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.activeQuery(ctx), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormOrderRepository) activeQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&trade.Order{}).Where("deleted = ?", false)
}

func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("customer_name LIKE ?", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "customer_name":
			query = query.Where("customer_name = ?", value)
		}
	}
	return query
}

// linesInInsertionOrder keeps preloaded order lines in the order they
// were added to the cart
func linesInInsertionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// Ensure GormOrderRepository implements OrderRepository
var _ trade.OrderRepository = (*GormOrderRepository)(nil)
