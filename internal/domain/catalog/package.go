package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Package is a packaging configuration wrapping one product. It binds
// the printing plate used per unit and the carton that holds
// PiecesPerCarton packaged units.
type Package struct {
	shared.BaseAggregateRoot
	Name              string          `gorm:"type:varchar(200);not null"`
	Size              string          `gorm:"type:varchar(50)"`
	Price             decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	AvailableQuantity int             `gorm:"not null;default:0"`
	PiecesPerCarton   int             `gorm:"not null"`
	PlateID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	CartonID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Deleted           bool            `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (Package) TableName() string {
	return "packages"
}

// NewPackage creates a new packaging configuration
func NewPackage(name, size string, price decimal.Decimal, availableQuantity, piecesPerCarton int, plateID, cartonID uuid.UUID) (*Package, error) {
	if err := validatePackageAttributes(name, price, availableQuantity, piecesPerCarton, plateID, cartonID); err != nil {
		return nil, err
	}

	pkg := &Package{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Size:              size,
		Price:             price,
		AvailableQuantity: availableQuantity,
		PiecesPerCarton:   piecesPerCarton,
		PlateID:           plateID,
		CartonID:          cartonID,
	}

	return pkg, nil
}

// Update replaces the package's attributes. PiecesPerCarton stays
// validated here so consumption never sees a non-positive divisor
// through the normal write path.
func (p *Package) Update(name, size string, price decimal.Decimal, availableQuantity, piecesPerCarton int, plateID, cartonID uuid.UUID) error {
	if err := validatePackageAttributes(name, price, availableQuantity, piecesPerCarton, plateID, cartonID); err != nil {
		return err
	}

	p.Name = name
	p.Size = size
	p.Price = price
	p.AvailableQuantity = availableQuantity
	p.PiecesPerCarton = piecesPerCarton
	p.PlateID = plateID
	p.CartonID = cartonID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// AdjustAvailable applies a signed quantity delta; negative results are
// recorded and flagged, not rejected.
func (p *Package) AdjustAvailable(delta int) int {
	p.AvailableQuantity += delta
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	if p.AvailableQuantity < 0 {
		p.AddDomainEvent(NewStockWentNegativeEvent(AggregateTypePackage, p.ID, p.Name, p.AvailableQuantity))
	}

	return p.AvailableQuantity
}

// MarkDeleted soft-deletes the package
func (p *Package) MarkDeleted() {
	p.Deleted = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// IsDeleted returns true if the package is soft-deleted
func (p *Package) IsDeleted() bool {
	return p.Deleted
}

func validatePackageAttributes(name string, price decimal.Decimal, availableQuantity, piecesPerCarton int, plateID, cartonID uuid.UUID) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Package name cannot be empty")
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_PRICE", "Price must be greater than zero")
	}
	if availableQuantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Available quantity must be greater than zero")
	}
	if piecesPerCarton <= 0 {
		return shared.NewDomainError("INVALID_PIECES_PER_CARTON", "Pieces per carton must be greater than zero")
	}
	if plateID == uuid.Nil {
		return shared.NewDomainError("INVALID_PLATE", "Plate ID cannot be empty")
	}
	if cartonID == uuid.Nil {
		return shared.NewDomainError("INVALID_CARTON", "Carton ID cannot be empty")
	}
	return nil
}

var _ shared.SoftDeletable = (*Package)(nil)
