package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/shared"
)

// ManufacturedProduct is an immutable audit row recording one production
// event. Rows are append-only; repeated production of the same product
// yields one row per event.
type ManufacturedProduct struct {
	shared.BaseEntity
	ProductID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity        int       `gorm:"not null"`
	ManufactureDate time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ManufacturedProduct) TableName() string {
	return "manufactured_products"
}

// NewManufacturedProduct creates a new production audit record
func NewManufacturedProduct(productID uuid.UUID, quantity int) (*ManufacturedProduct, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Produced quantity must be greater than zero")
	}

	return &ManufacturedProduct{
		BaseEntity:      shared.NewBaseEntity(),
		ProductID:       productID,
		Quantity:        quantity,
		ManufactureDate: time.Now(),
	}, nil
}
