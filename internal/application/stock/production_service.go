package stock

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/packerp/backend/internal/domain/catalog"
	"github.com/packerp/backend/internal/domain/shared"
	"github.com/packerp/backend/internal/domain/stock"
)

// ProductionService records manufacturing runs: finished product goes up,
// the packaging chain goes down, and every run leaves exactly one audit
// row. Calls are intentionally non-idempotent.
type ProductionService struct {
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewProductionService creates a new production service
func NewProductionService(txScope TransactionScope, eventPublisher shared.EventPublisher, logger *zap.Logger) *ProductionService {
	return &ProductionService{
		txScope:        txScope,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Produce manufactures quantity units of a product. The product gains
// the quantity; its package and plate lose the same quantity and the
// carton loses a ceiling-rounded share. A product without a resolvable
// package simply gains stock, with no packaging consumption. The whole
// run commits or rolls back as one unit.
func (s *ProductionService) Produce(ctx context.Context, productID uuid.UUID, quantity int) (*catalog.Product, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Produced quantity must be greater than zero")
	}

	var product *catalog.Product
	var domainEvents []shared.DomainEvent

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		product, err = repos.Products().FindActiveByID(ctx, productID)
		if err != nil {
			return err
		}

		pkg, err := repos.Packages().FindActiveByID(ctx, product.PackageID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		if pkg != nil {
			deltas, err := stock.ProductionDeltas(quantity, pkg.PiecesPerCarton)
			if err != nil {
				return err
			}
			if err := s.consumePackaging(ctx, repos, pkg, deltas); err != nil {
				return err
			}
			collectEvents(product, pkg)
		} else {
			s.logger.Warn("producing without packaging consumption, package not found",
				zap.String("product_id", productID.String()),
				zap.String("package_id", product.PackageID.String()),
			)
		}

		product.AdjustAvailable(quantity)
		if err := repos.Products().SaveWithLock(ctx, product); err != nil {
			return err
		}

		record, err := stock.NewManufacturedProduct(productID, quantity)
		if err != nil {
			return err
		}
		if err := repos.ManufacturedProducts().Create(ctx, record); err != nil {
			return err
		}

		domainEvents = product.GetDomainEvents()
		product.ClearDomainEvents()
		return nil
	})
	if err != nil {
		s.logger.Error("production run aborted",
			zap.String("product_id", productID.String()),
			zap.Int("quantity", quantity),
			zap.Error(err),
		)
		return nil, err
	}

	s.publishEvents(ctx, domainEvents)

	s.logger.Info("production run recorded",
		zap.String("product_id", productID.String()),
		zap.Int("quantity", quantity),
		zap.Int("available_quantity", product.AvailableQuantity),
	)

	return product, nil
}

func (s *ProductionService) consumePackaging(ctx context.Context, repos TransactionalRepositories, pkg *catalog.Package, deltas stock.ConsumptionDeltas) error {
	plate, err := repos.Plates().FindActiveByID(ctx, pkg.PlateID)
	if err != nil {
		return err
	}
	carton, err := repos.Cartons().FindActiveByID(ctx, pkg.CartonID)
	if err != nil {
		return err
	}

	s.warnOnNegative(pkg.AdjustAvailable(deltas.Package), pkg.Name, "package")
	if err := repos.Packages().SaveWithLock(ctx, pkg); err != nil {
		return err
	}

	s.warnOnNegative(plate.AdjustAvailable(deltas.Plate), plate.Name, "plate")
	if err := repos.Plates().SaveWithLock(ctx, plate); err != nil {
		return err
	}
	collectEvents(pkg, plate)

	s.warnOnNegative(carton.AdjustAvailable(deltas.Carton), carton.Name, "carton")
	if err := repos.Cartons().SaveWithLock(ctx, carton); err != nil {
		return err
	}
	collectEvents(pkg, carton)

	return nil
}

func (s *ProductionService) warnOnNegative(resulting int, name, kind string) {
	if resulting < 0 {
		s.logger.Warn("stock went negative",
			zap.String("entity", kind),
			zap.String("name", name),
			zap.Int("available_quantity", resulting),
		)
	}
}

func (s *ProductionService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish domain events", zap.Error(err))
	}
}

// ManufacturingHistory returns the audit rows for a product, newest first
func (s *ProductionService) ManufacturingHistory(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]stock.ManufacturedProduct, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}

	var records []stock.ManufacturedProduct
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		records, err = repos.ManufacturedProducts().FindByProduct(ctx, productID, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
