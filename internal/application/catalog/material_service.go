package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/packerp/backend/internal/domain/catalog"
)

// MaterialService handles the raw packaging materials a package is built
// from: printing plates and cartons.
type MaterialService struct {
	plateRepo  catalog.PlateRepository
	cartonRepo catalog.CartonRepository
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(plateRepo catalog.PlateRepository, cartonRepo catalog.CartonRepository) *MaterialService {
	return &MaterialService{
		plateRepo:  plateRepo,
		cartonRepo: cartonRepo,
	}
}

// CreatePlate registers a new printing plate
func (s *MaterialService) CreatePlate(ctx context.Context, req CreatePlateRequest) (*PlateResponse, error) {
	plate, err := catalog.NewPlate(req.Name, req.AvailableQuantity)
	if err != nil {
		return nil, err
	}

	if err := s.plateRepo.Save(ctx, plate); err != nil {
		return nil, err
	}

	response := ToPlateResponse(plate)
	return &response, nil
}

// GetPlate retrieves a plate by ID
func (s *MaterialService) GetPlate(ctx context.Context, plateID uuid.UUID) (*PlateResponse, error) {
	plate, err := s.plateRepo.FindActiveByID(ctx, plateID)
	if err != nil {
		return nil, err
	}

	response := ToPlateResponse(plate)
	return &response, nil
}

// DeletePlate soft-deletes a plate
func (s *MaterialService) DeletePlate(ctx context.Context, plateID uuid.UUID) error {
	plate, err := s.plateRepo.FindActiveByID(ctx, plateID)
	if err != nil {
		return err
	}

	plate.MarkDeleted()

	return s.plateRepo.SaveWithLock(ctx, plate)
}

// CreateCarton registers a new carton type
func (s *MaterialService) CreateCarton(ctx context.Context, req CreateCartonRequest) (*CartonResponse, error) {
	carton, err := catalog.NewCarton(req.Name, req.Size, req.Price, req.AvailableQuantity)
	if err != nil {
		return nil, err
	}

	if err := s.cartonRepo.Save(ctx, carton); err != nil {
		return nil, err
	}

	response := ToCartonResponse(carton)
	return &response, nil
}

// GetCarton retrieves a carton by ID
func (s *MaterialService) GetCarton(ctx context.Context, cartonID uuid.UUID) (*CartonResponse, error) {
	carton, err := s.cartonRepo.FindActiveByID(ctx, cartonID)
	if err != nil {
		return nil, err
	}

	response := ToCartonResponse(carton)
	return &response, nil
}

// DeleteCarton soft-deletes a carton
func (s *MaterialService) DeleteCarton(ctx context.Context, cartonID uuid.UUID) error {
	carton, err := s.cartonRepo.FindActiveByID(ctx, cartonID)
	if err != nil {
		return err
	}

	carton.MarkDeleted()

	return s.cartonRepo.SaveWithLock(ctx, carton)
}
