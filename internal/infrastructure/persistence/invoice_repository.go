package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/shared"
	"github.com/packerp/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindActiveByID finds a non-deleted invoice by its ID
func (r *GormInvoiceRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*trade.Invoice, error) {
	var invoice trade.Invoice
	if err := r.db.WithContext(ctx).
		First(&invoice, "id = ? AND deleted = ?", id, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// ExistsActiveByID checks whether a non-deleted invoice exists
func (r *GormInvoiceRepository) ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trade.Invoice{}).
		Where("id = ? AND deleted = ?", id, false).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// NextInvoiceNumber returns the next free invoice number. Soft-deleted
// invoices still occupy their number, so they count toward the maximum.
func (r *GormInvoiceRepository) NextInvoiceNumber(ctx context.Context) (int64, error) {
	var result struct {
		Next int64
	}
	if err := r.db.WithContext(ctx).
		Model(&trade.Invoice{}).
		Select("COALESCE(MAX(invoice_number), 0) + 1 AS next").
		Scan(&result).Error; err != nil {
		return 0, err
	}
	return result.Next, nil
}

// Save creates or updates an invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *trade.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ trade.InvoiceRepository = (*GormInvoiceRepository)(nil)
