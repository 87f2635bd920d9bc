package trade

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appstock "github.com/packerp/backend/internal/application/stock"
	"github.com/packerp/backend/internal/domain/catalog"
	"github.com/packerp/backend/internal/domain/shared"
	"github.com/packerp/backend/internal/domain/trade"
)

// ReductionCoordinator is the port the order service uses to consume
// stock for a finalized order.
type ReductionCoordinator interface {
	ReduceForSale(ctx context.Context, events []appstock.SaleEvent) error
}

// OrderService handles the order lifecycle from shopping cart to
// submitted order, bridging into stock consumption on finalization.
type OrderService struct {
	orderRepo               trade.OrderRepository
	orderProductRepo        trade.OrderProductRepository
	invoiceRepo             trade.InvoiceRepository
	invoiceOrderProductRepo trade.InvoiceOrderProductRepository
	packageRepo             catalog.PackageRepository
	reducer                 ReductionCoordinator
	logger                  *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo trade.OrderRepository,
	orderProductRepo trade.OrderProductRepository,
	invoiceRepo trade.InvoiceRepository,
	invoiceOrderProductRepo trade.InvoiceOrderProductRepository,
	packageRepo catalog.PackageRepository,
	reducer ReductionCoordinator,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:               orderRepo,
		orderProductRepo:        orderProductRepo,
		invoiceRepo:             invoiceRepo,
		invoiceOrderProductRepo: invoiceOrderProductRepo,
		packageRepo:             packageRepo,
		reducer:                 reducer,
		logger:                  logger,
	}
}

// Create opens a new pending order
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	order, err := trade.NewOrder(req.CustomerName)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order with its lines
func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindActiveByIDWithLines(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves orders with pagination
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) (*shared.Paginated[OrderResponse], error) {
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

	orders, err := s.orderRepo.FindAllActive(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.CountActive(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToOrderResponses(orders), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// AddLine adds a line to a pending order
func (s *OrderService) AddLine(ctx context.Context, orderID uuid.UUID, req AddOrderLineRequest) (*OrderLineResponse, error) {
	order, err := s.orderRepo.FindActiveByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != trade.OrderStatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", "Lines can only be added to a pending order")
	}

	if _, err := s.packageRepo.FindActiveByID(ctx, req.PackageID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_PACKAGE", "Package not found")
		}
		return nil, err
	}

	line, err := trade.NewOrderProduct(orderID, req.PackageID, req.Number, req.SellingPrice)
	if err != nil {
		return nil, err
	}

	if err := s.orderProductRepo.Save(ctx, line); err != nil {
		return nil, err
	}

	response := ToOrderLineResponse(line)
	return &response, nil
}

// RemoveLine soft-deletes a line from a pending order
func (s *OrderService) RemoveLine(ctx context.Context, lineID uuid.UUID) error {
	line, err := s.orderProductRepo.FindActiveByID(ctx, lineID)
	if err != nil {
		return err
	}

	order, err := s.orderRepo.FindActiveByID(ctx, line.OrderID)
	if err != nil {
		return err
	}
	if order.Status != trade.OrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Lines can only be removed from a pending order")
	}

	line.MarkDeleted()

	return s.orderProductRepo.Save(ctx, line)
}

// Delete soft-deletes an order
func (s *OrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orderRepo.FindActiveByID(ctx, orderID)
	if err != nil {
		return err
	}

	order.MarkDeleted()

	return s.orderRepo.Save(ctx, order)
}

// CreateOrderFromShoppingCart finalizes the current pending order: the
// order is submitted, an invoice is cut over its lines, and the stock
// coordinator is called exactly once with the full line list as one
// batch. If the reduction aborts, the order stays pending.
func (s *OrderService) CreateOrderFromShoppingCart(ctx context.Context, req FinalizeOrderRequest) (*FinalizedOrderResponse, error) {
	mode := req.Mode
	if mode == "" {
		mode = appstock.SaleByPackage
	}
	if !mode.Valid() {
		return nil, shared.NewDomainError("INVALID_SALE_MODE", "Unknown sale mode")
	}

	order, err := s.orderRepo.FindPendingWithLines(ctx)
	if err != nil {
		return nil, err
	}

	lines := order.ActiveLines()
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order has no lines to submit")
	}

	events := make([]appstock.SaleEvent, len(lines))
	for i, line := range lines {
		events[i] = appstock.SaleEvent{
			OrderProductID: line.ID,
			Quantity:       line.Number,
			Mode:           mode,
		}
	}

	if err := s.reducer.ReduceForSale(ctx, events); err != nil {
		return nil, err
	}

	if err := order.Submit(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	invoiceNumber, err := s.invoiceRepo.NextInvoiceNumber(ctx)
	if err != nil {
		return nil, err
	}
	invoice, err := trade.NewInvoice(invoiceNumber)
	if err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	for _, line := range lines {
		link, err := trade.NewInvoiceOrderProduct(line.ID, invoice.ID)
		if err != nil {
			return nil, err
		}
		if err := s.invoiceOrderProductRepo.Save(ctx, link); err != nil {
			return nil, err
		}
	}

	s.logger.Info("order finalized",
		zap.String("order_id", order.ID.String()),
		zap.Int64("invoice_number", invoice.InvoiceNumber),
		zap.Int("lines", len(lines)),
		zap.String("mode", string(mode)),
	)

	return &FinalizedOrderResponse{
		Order:         ToOrderResponse(order),
		InvoiceID:     invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
	}, nil
}
