package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/shared"
	"github.com/packerp/backend/internal/domain/stock"
	"gorm.io/gorm"
)

// GormManufacturedProductRepository implements ManufacturedProductRepository
// using GORM. Records are append-only.
type GormManufacturedProductRepository struct {
	db *gorm.DB
}

// NewGormManufacturedProductRepository creates a new GormManufacturedProductRepository
func NewGormManufacturedProductRepository(db *gorm.DB) *GormManufacturedProductRepository {
	return &GormManufacturedProductRepository{db: db}
}

// Create appends a new production audit record
func (r *GormManufacturedProductRepository) Create(ctx context.Context, record *stock.ManufacturedProduct) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByProduct finds audit records for a product
func (r *GormManufacturedProductRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]stock.ManufacturedProduct, error) {
	var records []stock.ManufacturedProduct
	query := r.db.WithContext(ctx).
		Model(&stock.ManufacturedProduct{}).
		Where("product_id = ?", productID)
	query = applyPagingAndOrder(query, filter, manufacturedSortFields)

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// CountByProduct counts audit records for a product
func (r *GormManufacturedProductRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&stock.ManufacturedProduct{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var manufacturedSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"quantity":         true,
	"manufacture_date": true,
}

// Ensure GormManufacturedProductRepository implements ManufacturedProductRepository
var _ stock.ManufacturedProductRepository = (*GormManufacturedProductRepository)(nil)
