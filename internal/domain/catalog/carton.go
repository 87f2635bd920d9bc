package catalog

import (
	"time"

	"github.com/packerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Carton is a bulk packaging resource. One carton holds a fixed number
// of packages (Package.PiecesPerCarton); stock is kept in whole cartons
// and consumption is rounded up because an opened carton counts as used.
type Carton struct {
	shared.BaseAggregateRoot
	Name              string          `gorm:"type:varchar(200);not null"`
	Size              string          `gorm:"type:varchar(50)"`
	Price             decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	AvailableQuantity int             `gorm:"not null;default:0"`
	Deleted           bool            `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (Carton) TableName() string {
	return "cartons"
}

// NewCarton creates a new carton
func NewCarton(name, size string, price decimal.Decimal, availableQuantity int) (*Carton, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Carton name cannot be empty")
	}
	if availableQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Available quantity cannot be negative")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Carton{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Size:              size,
		Price:             price,
		AvailableQuantity: availableQuantity,
	}, nil
}

// AdjustAvailable applies a signed quantity delta in whole cartons;
// negative results are recorded and flagged, not rejected.
func (c *Carton) AdjustAvailable(delta int) int {
	c.AvailableQuantity += delta
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	if c.AvailableQuantity < 0 {
		c.AddDomainEvent(NewStockWentNegativeEvent(AggregateTypeCarton, c.ID, c.Name, c.AvailableQuantity))
	}

	return c.AvailableQuantity
}

// MarkDeleted soft-deletes the carton
func (c *Carton) MarkDeleted() {
	c.Deleted = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// IsDeleted returns true if the carton is soft-deleted
func (c *Carton) IsDeleted() bool {
	return c.Deleted
}

var _ shared.SoftDeletable = (*Carton)(nil)
