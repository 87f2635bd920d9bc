package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/shared"
)

// Invoice is a billing document covering one or more order lines.
type Invoice struct {
	shared.BaseAggregateRoot
	InvoiceNumber int64     `gorm:"not null;uniqueIndex"`
	InvoiceDate   time.Time `gorm:"not null"`
	Deleted       bool      `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoice creates a new invoice
func NewInvoice(invoiceNumber int64) (*Invoice, error) {
	if invoiceNumber <= 0 {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number must be greater than zero")
	}

	return &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvoiceNumber:     invoiceNumber,
		InvoiceDate:       time.Now(),
	}, nil
}

// MarkDeleted soft-deletes the invoice
func (i *Invoice) MarkDeleted() {
	i.Deleted = true
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

// IsDeleted returns true if the invoice is soft-deleted
func (i *Invoice) IsDeleted() bool {
	return i.Deleted
}

// InvoiceOrderProduct links an order line to the invoice fulfilling it.
// It is the unit of work the stock reduction batch iterates over.
type InvoiceOrderProduct struct {
	shared.BaseAggregateRoot
	OrderProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	InvoiceID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Deleted        bool      `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (InvoiceOrderProduct) TableName() string {
	return "invoice_order_products"
}

// NewInvoiceOrderProduct links an order line to an invoice
func NewInvoiceOrderProduct(orderProductID, invoiceID uuid.UUID) (*InvoiceOrderProduct, error) {
	if orderProductID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER_PRODUCT", "Order product ID cannot be empty")
	}
	if invoiceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Invoice ID cannot be empty")
	}

	return &InvoiceOrderProduct{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderProductID:    orderProductID,
		InvoiceID:         invoiceID,
	}, nil
}

var _ shared.SoftDeletable = (*Invoice)(nil)
