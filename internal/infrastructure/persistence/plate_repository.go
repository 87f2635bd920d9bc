package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/catalog"
	"github.com/packerp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPlateRepository implements PlateRepository using GORM
type GormPlateRepository struct {
	db *gorm.DB
}

// NewGormPlateRepository creates a new GormPlateRepository
func NewGormPlateRepository(db *gorm.DB) *GormPlateRepository {
	return &GormPlateRepository{db: db}
}

// FindActiveByID finds a non-deleted plate by its ID
func (r *GormPlateRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*catalog.Plate, error) {
	var plate catalog.Plate
	if err := r.db.WithContext(ctx).
		First(&plate, "id = ? AND deleted = ?", id, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &plate, nil
}

// ExistsActiveByID checks whether a non-deleted plate exists
func (r *GormPlateRepository) ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Plate{}).
		Where("id = ? AND deleted = ?", id, false).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a plate
func (r *GormPlateRepository) Save(ctx context.Context, plate *catalog.Plate) error {
	return r.db.WithContext(ctx).Save(plate).Error
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormPlateRepository) SaveWithLock(ctx context.Context, plate *catalog.Plate) error {
	result := r.db.WithContext(ctx).
		Model(plate).
		Where("id = ? AND version = ?", plate.ID, plate.Version-1).
		Updates(map[string]interface{}{
			"name":               plate.Name,
			"available_quantity": plate.AvailableQuantity,
			"deleted":            plate.Deleted,
			"version":            plate.Version,
			"updated_at":         plate.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Ensure GormPlateRepository implements PlateRepository
var _ catalog.PlateRepository = (*GormPlateRepository)(nil)
