package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence.
// Active lookups exclude soft-deleted records.
type ProductRepository interface {
	// FindActiveByID finds a non-deleted product by its ID
	FindActiveByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindActiveByPackage finds the non-deleted product wrapped by a package
	FindActiveByPackage(ctx context.Context, packageID uuid.UUID) (*Product, error)

	// FindAllActive finds all non-deleted products
	FindAllActive(ctx context.Context, filter shared.Filter) ([]Product, error)

	// ExistsActiveByID checks whether a non-deleted product exists
	ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// SaveWithLock saves with optimistic locking (checks version)
	SaveWithLock(ctx context.Context, product *Product) error

	// CountActive counts non-deleted products matching the filter
	CountActive(ctx context.Context, filter shared.Filter) (int64, error)
}

// PackageRepository defines the interface for package persistence
type PackageRepository interface {
	// FindActiveByID finds a non-deleted package by its ID
	FindActiveByID(ctx context.Context, id uuid.UUID) (*Package, error)

	// FindAllActive finds all non-deleted packages
	FindAllActive(ctx context.Context, filter shared.Filter) ([]Package, error)

	// ExistsActiveByID checks whether a non-deleted package exists
	ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Save creates or updates a package
	Save(ctx context.Context, pkg *Package) error

	// SaveWithLock saves with optimistic locking (checks version)
	SaveWithLock(ctx context.Context, pkg *Package) error

	// CountActive counts non-deleted packages matching the filter
	CountActive(ctx context.Context, filter shared.Filter) (int64, error)
}

// PlateRepository defines the interface for plate persistence
type PlateRepository interface {
	// FindActiveByID finds a non-deleted plate by its ID
	FindActiveByID(ctx context.Context, id uuid.UUID) (*Plate, error)

	// ExistsActiveByID checks whether a non-deleted plate exists
	ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Save creates or updates a plate
	Save(ctx context.Context, plate *Plate) error

	// SaveWithLock saves with optimistic locking (checks version)
	SaveWithLock(ctx context.Context, plate *Plate) error
}

// CartonRepository defines the interface for carton persistence
type CartonRepository interface {
	// FindActiveByID finds a non-deleted carton by its ID
	FindActiveByID(ctx context.Context, id uuid.UUID) (*Carton, error)

	// ExistsActiveByID checks whether a non-deleted carton exists
	ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Save creates or updates a carton
	Save(ctx context.Context, carton *Carton) error

	// SaveWithLock saves with optimistic locking (checks version)
	SaveWithLock(ctx context.Context, carton *Carton) error
}
