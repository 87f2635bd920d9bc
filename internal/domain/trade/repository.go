package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/shared"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindActiveByID finds a non-deleted order by its ID
	FindActiveByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindActiveByIDWithLines finds a non-deleted order with its lines loaded
	FindActiveByIDWithLines(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindPendingWithLines finds the current pending (cart) order with lines
	FindPendingWithLines(ctx context.Context) (*Order, error)

	// FindAllActive finds all non-deleted orders
	FindAllActive(ctx context.Context, filter shared.Filter) ([]Order, error)

	// ExistsActiveByID checks whether a non-deleted order exists
	ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Save creates or updates an order
	Save(ctx context.Context, order *Order) error

	// CountActive counts non-deleted orders matching the filter
	CountActive(ctx context.Context, filter shared.Filter) (int64, error)
}

// OrderProductRepository defines the interface for order line persistence
type OrderProductRepository interface {
	// FindActiveByID finds a non-deleted order line by its ID
	FindActiveByID(ctx context.Context, id uuid.UUID) (*OrderProduct, error)

	// FindActiveByOrder finds the non-deleted lines of an order in insertion order
	FindActiveByOrder(ctx context.Context, orderID uuid.UUID) ([]OrderProduct, error)

	// ExistsActiveByID checks whether a non-deleted order line exists
	ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Save creates or updates an order line
	Save(ctx context.Context, line *OrderProduct) error
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindActiveByID finds a non-deleted invoice by its ID
	FindActiveByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// ExistsActiveByID checks whether a non-deleted invoice exists
	ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error)

	// NextInvoiceNumber returns the next free invoice number
	NextInvoiceNumber(ctx context.Context) (int64, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, invoice *Invoice) error
}

// InvoiceOrderProductRepository defines the interface for invoice line
// link persistence
type InvoiceOrderProductRepository interface {
	// FindActiveByID finds a non-deleted link by its ID
	FindActiveByID(ctx context.Context, id uuid.UUID) (*InvoiceOrderProduct, error)

	// FindActiveByInvoice finds the non-deleted links of an invoice
	FindActiveByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceOrderProduct, error)

	// Save creates or updates a link
	Save(ctx context.Context, link *InvoiceOrderProduct) error
}
