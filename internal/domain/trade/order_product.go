package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderProduct is a single order line: a requested number of units of
// one packaging configuration at an agreed selling price.
type OrderProduct struct {
	shared.BaseAggregateRoot
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	PackageID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Number       int             `gorm:"not null"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Deleted      bool            `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (OrderProduct) TableName() string {
	return "order_products"
}

// NewOrderProduct creates a new order line
func NewOrderProduct(orderID, packageID uuid.UUID, number int, sellingPrice decimal.Decimal) (*OrderProduct, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if packageID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PACKAGE", "Package ID cannot be empty")
	}
	if number <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Ordered number must be greater than zero")
	}
	if sellingPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}

	return &OrderProduct{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderID:           orderID,
		PackageID:         packageID,
		Number:            number,
		SellingPrice:      sellingPrice,
	}, nil
}

// LineTotal returns number * selling price
func (op *OrderProduct) LineTotal() decimal.Decimal {
	return op.SellingPrice.Mul(decimal.NewFromInt(int64(op.Number)))
}

// MarkDeleted soft-deletes the order line
func (op *OrderProduct) MarkDeleted() {
	op.Deleted = true
	op.UpdatedAt = time.Now()
	op.IncrementVersion()
}

// IsDeleted returns true if the line is soft-deleted
func (op *OrderProduct) IsDeleted() bool {
	return op.Deleted
}

var _ shared.SoftDeletable = (*OrderProduct)(nil)
