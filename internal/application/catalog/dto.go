package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/packerp/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name              string          `json:"name" binding:"required,min=1,max=200"`
	Price             decimal.Decimal `json:"price" binding:"required"`
	AvailableQuantity int             `json:"available_quantity" binding:"required,gt=0"`
	PackageID         uuid.UUID       `json:"package_id" binding:"required"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name              string          `json:"name" binding:"required,min=1,max=200"`
	Price             decimal.Decimal `json:"price" binding:"required"`
	AvailableQuantity int             `json:"available_quantity" binding:"required,gt=0"`
	PackageID         uuid.UUID       `json:"package_id" binding:"required"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	AvailableQuantity int             `json:"available_quantity"`
	PackageID         uuid.UUID       `json:"package_id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Version           int             `json:"version"`
}

// CreatePackageRequest represents a request to create a packaging configuration
type CreatePackageRequest struct {
	Name              string          `json:"name" binding:"required,min=1,max=200"`
	Size              string          `json:"size" binding:"max=50"`
	Price             decimal.Decimal `json:"price" binding:"required"`
	AvailableQuantity int             `json:"available_quantity" binding:"required,gt=0"`
	PiecesPerCarton   int             `json:"pieces_per_carton" binding:"required,gt=0"`
	PlateID           uuid.UUID       `json:"plate_id" binding:"required"`
	CartonID          uuid.UUID       `json:"carton_id" binding:"required"`
}

// UpdatePackageRequest represents a request to update a packaging configuration
type UpdatePackageRequest struct {
	Name              string          `json:"name" binding:"required,min=1,max=200"`
	Size              string          `json:"size" binding:"max=50"`
	Price             decimal.Decimal `json:"price" binding:"required"`
	AvailableQuantity int             `json:"available_quantity" binding:"required,gt=0"`
	PiecesPerCarton   int             `json:"pieces_per_carton" binding:"required,gt=0"`
	PlateID           uuid.UUID       `json:"plate_id" binding:"required"`
	CartonID          uuid.UUID       `json:"carton_id" binding:"required"`
}

// PackageResponse represents a package in API responses
type PackageResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Size              string          `json:"size"`
	Price             decimal.Decimal `json:"price"`
	AvailableQuantity int             `json:"available_quantity"`
	PiecesPerCarton   int             `json:"pieces_per_carton"`
	PlateID           uuid.UUID       `json:"plate_id"`
	CartonID          uuid.UUID       `json:"carton_id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Version           int             `json:"version"`
}

// CreatePlateRequest represents a request to register a printing plate
type CreatePlateRequest struct {
	Name              string `json:"name" binding:"required,min=1,max=200"`
	AvailableQuantity int    `json:"available_quantity" binding:"min=0"`
}

// PlateResponse represents a plate in API responses
type PlateResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	AvailableQuantity int       `json:"available_quantity"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	Version           int       `json:"version"`
}

// CreateCartonRequest represents a request to register a carton type
type CreateCartonRequest struct {
	Name              string          `json:"name" binding:"required,min=1,max=200"`
	Size              string          `json:"size" binding:"max=50"`
	Price             decimal.Decimal `json:"price"`
	AvailableQuantity int             `json:"available_quantity" binding:"min=0"`
}

// CartonResponse represents a carton in API responses
type CartonResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Size              string          `json:"size"`
	Price             decimal.Decimal `json:"price"`
	AvailableQuantity int             `json:"available_quantity"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Version           int             `json:"version"`
}

// ListFilter represents filter options for catalog lists
type ListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Price:             p.Price,
		AvailableQuantity: p.AvailableQuantity,
		PackageID:         p.PackageID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		Version:           p.Version,
	}
}

// ToProductResponses converts a slice of domain Products to responses
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

// ToPackageResponse converts a domain Package to PackageResponse
func ToPackageResponse(p *catalog.Package) PackageResponse {
	return PackageResponse{
		ID:                p.ID,
		Name:              p.Name,
		Size:              p.Size,
		Price:             p.Price,
		AvailableQuantity: p.AvailableQuantity,
		PiecesPerCarton:   p.PiecesPerCarton,
		PlateID:           p.PlateID,
		CartonID:          p.CartonID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		Version:           p.Version,
	}
}

// ToPackageResponses converts a slice of domain Packages to responses
func ToPackageResponses(packages []catalog.Package) []PackageResponse {
	responses := make([]PackageResponse, len(packages))
	for i := range packages {
		responses[i] = ToPackageResponse(&packages[i])
	}
	return responses
}

// ToPlateResponse converts a domain Plate to PlateResponse
func ToPlateResponse(p *catalog.Plate) PlateResponse {
	return PlateResponse{
		ID:                p.ID,
		Name:              p.Name,
		AvailableQuantity: p.AvailableQuantity,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		Version:           p.Version,
	}
}

// ToCartonResponse converts a domain Carton to CartonResponse
func ToCartonResponse(c *catalog.Carton) CartonResponse {
	return CartonResponse{
		ID:                c.ID,
		Name:              c.Name,
		Size:              c.Size,
		Price:             c.Price,
		AvailableQuantity: c.AvailableQuantity,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
		Version:           c.Version,
	}
}
