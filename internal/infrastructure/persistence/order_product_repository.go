package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/shared"
	"github.com/packerp/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormOrderProductRepository implements OrderProductRepository using GORM
type GormOrderProductRepository struct {
	db *gorm.DB
}

// NewGormOrderProductRepository creates a new GormOrderProductRepository
func NewGormOrderProductRepository(db *gorm.DB) *GormOrderProductRepository {
	return &GormOrderProductRepository{db: db}
}

// FindActiveByID finds a non-deleted order line by its ID
func (r *GormOrderProductRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*trade.OrderProduct, error) {
	var line trade.OrderProduct
	if err := r.db.WithContext(ctx).
		First(&line, "id = ? AND deleted = ?", id, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

// FindActiveByOrder finds the non-deleted lines of an order in insertion order
func (r *GormOrderProductRepository) FindActiveByOrder(ctx context.Context, orderID uuid.UUID) ([]trade.OrderProduct, error) {
	var lines []trade.OrderProduct
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND deleted = ?", orderID, false).
		Order("created_at ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// ExistsActiveByID checks whether a non-deleted order line exists
func (r *GormOrderProductRepository) ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trade.OrderProduct{}).
		Where("id = ? AND deleted = ?", id, false).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an order line
func (r *GormOrderProductRepository) Save(ctx context.Context, line *trade.OrderProduct) error {
	return r.db.WithContext(ctx).Save(line).Error
}

// Ensure GormOrderProductRepository implements OrderProductRepository
var _ trade.OrderProductRepository = (*GormOrderProductRepository)(nil)
