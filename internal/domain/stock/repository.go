package stock

import (
	"context"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/shared"
)

// ManufacturedProductRepository defines the interface for production
// audit persistence. The table is append-only: no update or delete.
type ManufacturedProductRepository interface {
	// Create appends a new production audit record
	Create(ctx context.Context, record *ManufacturedProduct) error

	// FindByProduct finds audit records for a product
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]ManufacturedProduct, error)

	// CountByProduct counts audit records for a product
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}
