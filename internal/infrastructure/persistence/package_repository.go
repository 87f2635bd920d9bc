package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/catalog"
	"github.com/packerp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPackageRepository implements PackageRepository using GORM
type GormPackageRepository struct {
	db *gorm.DB
}

// NewGormPackageRepository creates a new GormPackageRepository
func NewGormPackageRepository(db *gorm.DB) *GormPackageRepository {
	return &GormPackageRepository{db: db}
}

// FindActiveByID finds a non-deleted package by its ID
func (r *GormPackageRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*catalog.Package, error) {
	var pkg catalog.Package
	if err := r.db.WithContext(ctx).
		First(&pkg, "id = ? AND deleted = ?", id, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

// FindAllActive finds all non-deleted packages
func (r *GormPackageRepository) FindAllActive(ctx context.Context, filter shared.Filter) ([]catalog.Package, error) {
	var pkgs []catalog.Package
	query := r.applyFilter(r.activeQuery(ctx), filter)
	query = applyPagingAndOrder(query, filter, CatalogSortFields)

	if err := query.Find(&pkgs).Error; err != nil {
		return nil, err
	}
	return pkgs, nil
}

// ExistsActiveByID checks whether a non-deleted package exists
func (r *GormPackageRepository) ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Package{}).
		Where("id = ? AND deleted = ?", id, false).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a package
func (r *GormPackageRepository) Save(ctx context.Context, pkg *catalog.Package) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormPackageRepository) SaveWithLock(ctx context.Context, pkg *catalog.Package) error {
	result := r.db.WithContext(ctx).
		Model(pkg).
		Where("id = ? AND version = ?", pkg.ID, pkg.Version-1).
		Updates(map[string]interface{}{
			"name":               pkg.Name,
			"size":               pkg.Size,
			"price":              pkg.Price,
			"available_quantity": pkg.AvailableQuantity,
			"pieces_per_carton":  pkg.PiecesPerCarton,
			"plate_id":           pkg.PlateID,
			"carton_id":          pkg.CartonID,
			"deleted":            pkg.Deleted,
			"version":            pkg.Version,
			"updated_at":         pkg.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// CountActive counts non-deleted packages matching the filter
func (r *GormPackageRepository) CountActive(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.activeQuery(ctx), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormPackageRepository) activeQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&catalog.Package{}).Where("deleted = ?", false)
}

func (r *GormPackageRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "plate_id":
			query = query.Where("plate_id = ?", value)
		case "carton_id":
			query = query.Where("carton_id = ?", value)
		}
	}
	return query
}

// Ensure GormPackageRepository implements PackageRepository
var _ catalog.PackageRepository = (*GormPackageRepository)(nil)
