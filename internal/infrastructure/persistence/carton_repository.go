package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/catalog"
	"github.com/packerp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCartonRepository implements CartonRepository using GORM
type GormCartonRepository struct {
	db *gorm.DB
}

// NewGormCartonRepository creates a new GormCartonRepository
func NewGormCartonRepository(db *gorm.DB) *GormCartonRepository {
	return &GormCartonRepository{db: db}
}

// FindActiveByID finds a non-deleted carton by its ID
func (r *GormCartonRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*catalog.Carton, error) {
	var carton catalog.Carton
	if err := r.db.WithContext(ctx).
		First(&carton, "id = ? AND deleted = ?", id, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &carton, nil
}

// ExistsActiveByID checks whether a non-deleted carton exists
func (r *GormCartonRepository) ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Carton{}).
		Where("id = ? AND deleted = ?", id, false).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a carton
func (r *GormCartonRepository) Save(ctx context.Context, carton *catalog.Carton) error {
	return r.db.WithContext(ctx).Save(carton).Error
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormCartonRepository) SaveWithLock(ctx context.Context, carton *catalog.Carton) error {
	result := r.db.WithContext(ctx).
		Model(carton).
		Where("id = ? AND version = ?", carton.ID, carton.Version-1).
		Updates(map[string]interface{}{
			"name":               carton.Name,
			"size":               carton.Size,
			"price":              carton.Price,
			"available_quantity": carton.AvailableQuantity,
			"deleted":            carton.Deleted,
			"version":            carton.Version,
			"updated_at":         carton.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Ensure GormCartonRepository implements CartonRepository
var _ catalog.CartonRepository = (*GormCartonRepository)(nil)
