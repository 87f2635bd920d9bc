package catalog

import (
	"time"

	"github.com/packerp/backend/internal/domain/shared"
)

// Plate is a printing/stamping resource consumed one-for-one with each
// package unit, regardless of how units are packed into cartons.
type Plate struct {
	shared.BaseAggregateRoot
	Name              string `gorm:"type:varchar(200);not null"`
	AvailableQuantity int    `gorm:"not null;default:0"`
	Deleted           bool   `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (Plate) TableName() string {
	return "plates"
}

// NewPlate creates a new plate
func NewPlate(name string, availableQuantity int) (*Plate, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Plate name cannot be empty")
	}
	if availableQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Available quantity cannot be negative")
	}

	return &Plate{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		AvailableQuantity: availableQuantity,
	}, nil
}

// AdjustAvailable applies a signed quantity delta; negative results are
// recorded and flagged, not rejected.
func (p *Plate) AdjustAvailable(delta int) int {
	p.AvailableQuantity += delta
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	if p.AvailableQuantity < 0 {
		p.AddDomainEvent(NewStockWentNegativeEvent(AggregateTypePlate, p.ID, p.Name, p.AvailableQuantity))
	}

	return p.AvailableQuantity
}

// MarkDeleted soft-deletes the plate
func (p *Plate) MarkDeleted() {
	p.Deleted = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// IsDeleted returns true if the plate is soft-deleted
func (p *Plate) IsDeleted() bool {
	return p.Deleted
}

var _ shared.SoftDeletable = (*Plate)(nil)
