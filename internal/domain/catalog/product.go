package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a finished, sellable unit produced by the plant.
// It is the aggregate root for product-related operations. Each product
// is wrapped by exactly one packaging configuration (Package).
type Product struct {
	shared.BaseAggregateRoot
	Name              string          `gorm:"type:varchar(200);not null"`
	Price             decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	AvailableQuantity int             `gorm:"not null;default:0"`
	PackageID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Deleted           bool            `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product wrapped by the given package
func NewProduct(name string, price decimal.Decimal, availableQuantity int, packageID uuid.UUID) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price must be greater than zero")
	}
	if availableQuantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Available quantity must be greater than zero")
	}
	if packageID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PACKAGE", "Package ID cannot be empty")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Price:             price,
		AvailableQuantity: availableQuantity,
		PackageID:         packageID,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update replaces the product's catalog attributes
func (p *Product) Update(name string, price decimal.Decimal, availableQuantity int, packageID uuid.UUID) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_PRICE", "Price must be greater than zero")
	}
	if availableQuantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Available quantity must be greater than zero")
	}
	if packageID == uuid.Nil {
		return shared.NewDomainError("INVALID_PACKAGE", "Package ID cannot be empty")
	}

	p.Name = name
	p.Price = price
	p.AvailableQuantity = availableQuantity
	p.PackageID = packageID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// AdjustAvailable applies a signed quantity delta from a sale or
// production event. A result below zero is recorded, not rejected:
// the anomaly is surfaced as a StockWentNegative event for observers.
func (p *Product) AdjustAvailable(delta int) int {
	p.AvailableQuantity += delta
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	if p.AvailableQuantity < 0 {
		p.AddDomainEvent(NewStockWentNegativeEvent(AggregateTypeProduct, p.ID, p.Name, p.AvailableQuantity))
	}

	return p.AvailableQuantity
}

// MarkDeleted soft-deletes the product, hiding it from active lookups
func (p *Product) MarkDeleted() {
	p.Deleted = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductDeletedEvent(p))
}

// IsDeleted returns true if the product is soft-deleted
func (p *Product) IsDeleted() bool {
	return p.Deleted
}

// HasAvailableStock returns true if there is sellable stock
func (p *Product) HasAvailableStock() bool {
	return p.AvailableQuantity > 0
}

var _ shared.SoftDeletable = (*Product)(nil)
