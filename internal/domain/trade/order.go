package trade

import (
	"time"

	"github.com/packerp/backend/internal/domain/shared"
)

// OrderStatus represents the lifecycle state of a customer order
type OrderStatus string

const (
	// OrderStatusPending is the shopping-cart stage: lines may still change
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusSubmitted means the order was finalized and stock was consumed
	OrderStatusSubmitted OrderStatus = "submitted"
)

// Order is a customer order owning an ordered collection of lines.
// It is the aggregate root for order operations.
type Order struct {
	shared.BaseAggregateRoot
	CustomerName string      `gorm:"type:varchar(200);not null"`
	OrderDate    time.Time   `gorm:"not null"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	Deleted      bool        `gorm:"not null;default:false;index"`

	// Lines are loaded with the order when needed
	Lines []OrderProduct `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new pending order
func NewOrder(customerName string) (*Order, error) {
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer name cannot be empty")
	}

	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerName:      customerName,
		OrderDate:         time.Now(),
		Status:            OrderStatusPending,
		Lines:             make([]OrderProduct, 0),
	}, nil
}

// Submit finalizes a pending order. Only a pending order can be
// submitted, and it must carry at least one line.
func (o *Order) Submit() error {
	if o.Status != OrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only a pending order can be submitted")
	}
	if len(o.ActiveLines()) == 0 {
		return shared.NewDomainError("EMPTY_ORDER", "Order has no lines to submit")
	}

	o.Status = OrderStatusSubmitted
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// ActiveLines returns the non-deleted order lines in insertion order
func (o *Order) ActiveLines() []OrderProduct {
	lines := make([]OrderProduct, 0, len(o.Lines))
	for _, line := range o.Lines {
		if !line.Deleted {
			lines = append(lines, line)
		}
	}
	return lines
}

// MarkDeleted soft-deletes the order
func (o *Order) MarkDeleted() {
	o.Deleted = true
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// IsDeleted returns true if the order is soft-deleted
func (o *Order) IsDeleted() bool {
	return o.Deleted
}

var _ shared.SoftDeletable = (*Order)(nil)
