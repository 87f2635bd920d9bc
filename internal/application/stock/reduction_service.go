package stock

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/packerp/backend/internal/domain/catalog"
	"github.com/packerp/backend/internal/domain/shared"
	"github.com/packerp/backend/internal/domain/stock"
)

// ReductionService coordinates inventory consumption for invoiced sales.
// It owns no arithmetic of its own: deltas come from the consumption
// calculator, and all writes happen inside one transaction scope so a
// batch either lands completely or not at all.
type ReductionService struct {
	txScope        TransactionScope
	notifier       StockReportNotifier
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewReductionService creates a new reduction service
func NewReductionService(
	txScope TransactionScope,
	notifier StockReportNotifier,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *ReductionService {
	return &ReductionService{
		txScope:        txScope,
		notifier:       notifier,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// ReduceForSale applies a batch of sale events to the stock chain.
// Events are processed in input order; the first unresolvable link or
// version conflict aborts the whole batch and rolls every write back.
// On success the resulting product stock levels are handed to the
// notifier; notifier failure is logged, never propagated.
func (s *ReductionService) ReduceForSale(ctx context.Context, events []SaleEvent) error {
	if len(events) == 0 {
		return shared.NewDomainError("EMPTY_BATCH", "Reduction batch cannot be empty")
	}
	for _, event := range events {
		if event.OrderProductID == uuid.Nil {
			return shared.NewDomainError("INVALID_ORDER_PRODUCT", "Order product ID cannot be empty")
		}
		if event.Quantity <= 0 {
			return shared.NewDomainError("INVALID_QUANTITY", "Sold quantity must be greater than zero")
		}
		if !event.Mode.Valid() {
			return shared.NewDomainError("INVALID_SALE_MODE", fmt.Sprintf("Unknown sale mode: %s", event.Mode))
		}
	}

	var report []ProductStockReport
	var domainEvents []shared.DomainEvent

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		for _, event := range events {
			product, err := s.applyEvent(ctx, repos, event)
			if err != nil {
				return err
			}

			report = append(report, ProductStockReport{
				ProductID:         product.ID.String(),
				Name:              product.Name,
				AvailableQuantity: product.AvailableQuantity,
			})
			domainEvents = append(domainEvents, product.GetDomainEvents()...)
			product.ClearDomainEvents()
		}
		return nil
	})
	if err != nil {
		s.logger.Error("stock reduction batch aborted",
			zap.Int("events", len(events)),
			zap.Error(err),
		)
		return err
	}

	s.publishEvents(ctx, domainEvents)

	if notifyErr := s.notifier.NotifyStockReport(ctx, report); notifyErr != nil {
		s.logger.Error("stock report notification failed",
			zap.Int("products", len(report)),
			zap.Error(notifyErr),
		)
	}

	return nil
}

// applyEvent resolves one event's entity chain, applies the calculator
// deltas and persists every touched aggregate with a version check.
func (s *ReductionService) applyEvent(ctx context.Context, repos TransactionalRepositories, event SaleEvent) (*catalog.Product, error) {
	line, err := repos.OrderProducts().FindActiveByID(ctx, event.OrderProductID)
	if err != nil {
		return nil, err
	}

	pkg, err := repos.Packages().FindActiveByID(ctx, line.PackageID)
	if err != nil {
		return nil, err
	}

	switch event.Mode {
	case SaleByProduct:
		return s.applyProductSale(ctx, repos, pkg, event.Quantity)
	case SaleByPackage:
		return s.applyPackageSale(ctx, repos, pkg, event.Quantity)
	default:
		return nil, shared.NewDomainError("INVALID_SALE_MODE", fmt.Sprintf("Unknown sale mode: %s", event.Mode))
	}
}

func (s *ReductionService) applyProductSale(ctx context.Context, repos TransactionalRepositories, pkg *catalog.Package, quantity int) (*catalog.Product, error) {
	deltas, err := stock.ProductSaleDeltas(quantity)
	if err != nil {
		return nil, err
	}

	product, err := repos.Products().FindActiveByPackage(ctx, pkg.ID)
	if err != nil {
		return nil, err
	}

	s.adjust(product.AdjustAvailable(deltas.Product), product.Name, "product")
	if err := repos.Products().SaveWithLock(ctx, product); err != nil {
		return nil, err
	}

	s.adjust(pkg.AdjustAvailable(deltas.Package), pkg.Name, "package")
	if err := repos.Packages().SaveWithLock(ctx, pkg); err != nil {
		return nil, err
	}
	collectEvents(product, pkg)

	return product, nil
}

func (s *ReductionService) applyPackageSale(ctx context.Context, repos TransactionalRepositories, pkg *catalog.Package, quantity int) (*catalog.Product, error) {
	deltas, err := stock.PackageSaleDeltas(quantity, pkg.PiecesPerCarton)
	if err != nil {
		return nil, err
	}

	plate, err := repos.Plates().FindActiveByID(ctx, pkg.PlateID)
	if err != nil {
		return nil, err
	}
	carton, err := repos.Cartons().FindActiveByID(ctx, pkg.CartonID)
	if err != nil {
		return nil, err
	}
	product, err := repos.Products().FindActiveByPackage(ctx, pkg.ID)
	if err != nil {
		return nil, err
	}

	s.adjust(pkg.AdjustAvailable(deltas.Package), pkg.Name, "package")
	if err := repos.Packages().SaveWithLock(ctx, pkg); err != nil {
		return nil, err
	}

	s.adjust(plate.AdjustAvailable(deltas.Plate), plate.Name, "plate")
	if err := repos.Plates().SaveWithLock(ctx, plate); err != nil {
		return nil, err
	}

	s.adjust(carton.AdjustAvailable(deltas.Carton), carton.Name, "carton")
	if err := repos.Cartons().SaveWithLock(ctx, carton); err != nil {
		return nil, err
	}

	s.adjust(product.AdjustAvailable(deltas.Product), product.Name, "product")
	if err := repos.Products().SaveWithLock(ctx, product); err != nil {
		return nil, err
	}
	collectEvents(product, pkg)
	collectEvents(product, plate)
	collectEvents(product, carton)

	return product, nil
}

// adjust logs the anomaly when a decrement drove stock below zero. The
// write itself is not rejected; observers decide what to do about it.
func (s *ReductionService) adjust(resulting int, name, kind string) {
	if resulting < 0 {
		s.logger.Warn("stock went negative",
			zap.String("entity", kind),
			zap.String("name", name),
			zap.Int("available_quantity", resulting),
		)
	}
}

func (s *ReductionService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish domain events", zap.Error(err))
	}
}

// collectEvents moves pending events from a dependent aggregate onto the
// aggregate the operation gathers events from.
func collectEvents(into, from shared.AggregateRoot) {
	for _, e := range from.GetDomainEvents() {
		into.AddDomainEvent(e)
	}
	from.ClearDomainEvents()
}
