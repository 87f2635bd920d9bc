package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/packerp/backend/internal/domain/catalog"
	"github.com/packerp/backend/internal/domain/shared"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo catalog.ProductRepository
	packageRepo catalog.PackageRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, packageRepo catalog.PackageRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		packageRepo: packageRepo,
	}
}

// Create creates a new product wrapped by an existing package
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	_, err := s.packageRepo.FindActiveByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_PACKAGE", "Package not found")
		}
		return nil, err
	}

	product, err := catalog.NewProduct(req.Name, req.Price, req.AvailableQuantity, req.PackageID)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindActiveByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByPackage retrieves the product wrapped by a package
func (s *ProductService) GetByPackage(ctx context.Context, packageID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindActiveByPackage(ctx, packageID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with pagination
func (s *ProductService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[ProductResponse], error) {
	domainFilter := toDomainFilter(filter)

	products, err := s.productRepo.FindAllActive(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.CountActive(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToProductResponses(products), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// Update replaces a product's catalog attributes
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindActiveByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.PackageID != product.PackageID {
		_, err := s.packageRepo.FindActiveByID(ctx, req.PackageID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_PACKAGE", "Package not found")
			}
			return nil, err
		}
	}

	if err := product.Update(req.Name, req.Price, req.AvailableQuantity, req.PackageID); err != nil {
		return nil, err
	}

	if err := s.productRepo.SaveWithLock(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete soft-deletes a product
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	product, err := s.productRepo.FindActiveByID(ctx, productID)
	if err != nil {
		return err
	}

	product.MarkDeleted()

	return s.productRepo.SaveWithLock(ctx, product)
}

func toDomainFilter(filter ListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	return domainFilter
}
