package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/packerp/backend/internal/domain/catalog"
	"github.com/packerp/backend/internal/domain/shared"
)

// PackageService handles packaging configuration operations
type PackageService struct {
	packageRepo catalog.PackageRepository
	plateRepo   catalog.PlateRepository
	cartonRepo  catalog.CartonRepository
}

// NewPackageService creates a new PackageService
func NewPackageService(
	packageRepo catalog.PackageRepository,
	plateRepo catalog.PlateRepository,
	cartonRepo catalog.CartonRepository,
) *PackageService {
	return &PackageService{
		packageRepo: packageRepo,
		plateRepo:   plateRepo,
		cartonRepo:  cartonRepo,
	}
}

// Create creates a new packaging configuration bound to an existing plate
// and carton
func (s *PackageService) Create(ctx context.Context, req CreatePackageRequest) (*PackageResponse, error) {
	if err := s.checkMaterials(ctx, req.PlateID, req.CartonID); err != nil {
		return nil, err
	}

	pkg, err := catalog.NewPackage(req.Name, req.Size, req.Price, req.AvailableQuantity, req.PiecesPerCarton, req.PlateID, req.CartonID)
	if err != nil {
		return nil, err
	}

	if err := s.packageRepo.Save(ctx, pkg); err != nil {
		return nil, err
	}

	response := ToPackageResponse(pkg)
	return &response, nil
}

// GetByID retrieves a package by ID
func (s *PackageService) GetByID(ctx context.Context, packageID uuid.UUID) (*PackageResponse, error) {
	pkg, err := s.packageRepo.FindActiveByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	response := ToPackageResponse(pkg)
	return &response, nil
}

// List retrieves packages with pagination
func (s *PackageService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[PackageResponse], error) {
	domainFilter := toDomainFilter(filter)

	packages, err := s.packageRepo.FindAllActive(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.packageRepo.CountActive(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToPackageResponses(packages), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// Update replaces a package's attributes
func (s *PackageService) Update(ctx context.Context, packageID uuid.UUID, req UpdatePackageRequest) (*PackageResponse, error) {
	pkg, err := s.packageRepo.FindActiveByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	if err := s.checkMaterials(ctx, req.PlateID, req.CartonID); err != nil {
		return nil, err
	}

	if err := pkg.Update(req.Name, req.Size, req.Price, req.AvailableQuantity, req.PiecesPerCarton, req.PlateID, req.CartonID); err != nil {
		return nil, err
	}

	if err := s.packageRepo.SaveWithLock(ctx, pkg); err != nil {
		return nil, err
	}

	response := ToPackageResponse(pkg)
	return &response, nil
}

// Delete soft-deletes a package
func (s *PackageService) Delete(ctx context.Context, packageID uuid.UUID) error {
	pkg, err := s.packageRepo.FindActiveByID(ctx, packageID)
	if err != nil {
		return err
	}

	pkg.MarkDeleted()

	return s.packageRepo.SaveWithLock(ctx, pkg)
}

func (s *PackageService) checkMaterials(ctx context.Context, plateID, cartonID uuid.UUID) error {
	if _, err := s.plateRepo.FindActiveByID(ctx, plateID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_PLATE", "Plate not found")
		}
		return err
	}
	if _, err := s.cartonRepo.FindActiveByID(ctx, cartonID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_CARTON", "Carton not found")
		}
		return err
	}
	return nil
}
