package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appstock "github.com/packerp/backend/internal/application/stock"
	"github.com/packerp/backend/internal/domain/trade"
)

// CreateOrderRequest represents a request to open a new pending order
type CreateOrderRequest struct {
	CustomerName string `json:"customer_name" binding:"required,min=1,max=200"`
}

// AddOrderLineRequest represents a request to add a line to a pending order
type AddOrderLineRequest struct {
	PackageID    uuid.UUID       `json:"package_id" binding:"required"`
	Number       int             `json:"number" binding:"required,gt=0"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// FinalizeOrderRequest finalizes the pending cart order. The sale mode
// applies to every line of the batch; it defaults to package settlement
// when omitted.
type FinalizeOrderRequest struct {
	Mode appstock.SaleMode `json:"mode" binding:"omitempty,oneof=by_product by_package"`
}

// OrderLineResponse represents an order line in API responses
type OrderLineResponse struct {
	ID           uuid.UUID       `json:"id"`
	PackageID    uuid.UUID       `json:"package_id"`
	Number       int             `json:"number"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	CustomerName string              `json:"customer_name"`
	OrderDate    time.Time           `json:"order_date"`
	Status       string              `json:"status"`
	Lines        []OrderLineResponse `json:"lines"`
	OrderTotal   decimal.Decimal     `json:"order_total"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	Version      int                 `json:"version"`
}

// FinalizedOrderResponse reports the outcome of cart finalization
type FinalizedOrderResponse struct {
	Order         OrderResponse `json:"order"`
	InvoiceID     uuid.UUID     `json:"invoice_id"`
	InvoiceNumber int64         `json:"invoice_number"`
}

// OrderListFilter represents filter options for order lists
type OrderListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToOrderLineResponse converts a domain OrderProduct to OrderLineResponse
func ToOrderLineResponse(line *trade.OrderProduct) OrderLineResponse {
	return OrderLineResponse{
		ID:           line.ID,
		PackageID:    line.PackageID,
		Number:       line.Number,
		SellingPrice: line.SellingPrice,
		LineTotal:    line.LineTotal(),
	}
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(order *trade.Order) OrderResponse {
	lines := order.ActiveLines()
	lineResponses := make([]OrderLineResponse, len(lines))
	total := decimal.Zero
	for i := range lines {
		lineResponses[i] = ToOrderLineResponse(&lines[i])
		total = total.Add(lines[i].LineTotal())
	}

	return OrderResponse{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		OrderDate:    order.OrderDate,
		Status:       string(order.Status),
		Lines:        lineResponses,
		OrderTotal:   total,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
		Version:      order.Version,
	}
}

// ToOrderResponses converts a slice of domain Orders to responses
func ToOrderResponses(orders []trade.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
