package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/shared"
	"github.com/packerp/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormInvoiceOrderProductRepository implements InvoiceOrderProductRepository
// using GORM
type GormInvoiceOrderProductRepository struct {
	db *gorm.DB
}

// NewGormInvoiceOrderProductRepository creates a new GormInvoiceOrderProductRepository
func NewGormInvoiceOrderProductRepository(db *gorm.DB) *GormInvoiceOrderProductRepository {
	return &GormInvoiceOrderProductRepository{db: db}
}

// FindActiveByID finds a non-deleted link by its ID
func (r *GormInvoiceOrderProductRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*trade.InvoiceOrderProduct, error) {
	var link trade.InvoiceOrderProduct
	if err := r.db.WithContext(ctx).
		First(&link, "id = ? AND deleted = ?", id, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// FindActiveByInvoice finds the non-deleted links of an invoice
func (r *GormInvoiceOrderProductRepository) FindActiveByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]trade.InvoiceOrderProduct, error) {
	var links []trade.InvoiceOrderProduct
	if err := r.db.WithContext(ctx).
		Where("invoice_id = ? AND deleted = ?", invoiceID, false).
		Order("created_at ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// Save creates or updates a link
func (r *GormInvoiceOrderProductRepository) Save(ctx context.Context, link *trade.InvoiceOrderProduct) error {
	return r.db.WithContext(ctx).Save(link).Error
}

// Ensure GormInvoiceOrderProductRepository implements InvoiceOrderProductRepository
var _ trade.InvoiceOrderProductRepository = (*GormInvoiceOrderProductRepository)(nil)
