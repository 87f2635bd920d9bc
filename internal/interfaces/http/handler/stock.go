package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	stockapp "github.com/packerp/backend/internal/application/stock"
	"github.com/packerp/backend/internal/domain/shared"
	"github.com/packerp/backend/internal/interfaces/http/middleware"
)

// StockHandler handles manufacturing API endpoints
type StockHandler struct {
	BaseHandler
	productionService *stockapp.ProductionService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(productionService *stockapp.ProductionService) *StockHandler {
	return &StockHandler{
		productionService: productionService,
	}
}

// RegisterRoutes registers manufacturing routes
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/product")
	{
		products.POST("/produce", h.Produce)
		products.GET("/:id/manufactured", h.ManufacturingHistory)
	}
}

// Produce manufactures product units, consuming packaging stock.
// Each call is a separate production run and appends its own audit row.
func (h *StockHandler) Produce(c *gin.Context) {
	var req stockapp.ProduceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.FormatBindingError(err))
		return
	}

	product, err := h.productionService.Produce(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stockapp.ProductionResponse{
		ProductID:         product.ID.String(),
		Name:              product.Name,
		ProducedQuantity:  req.Quantity,
		AvailableQuantity: product.AvailableQuantity,
	})
}

// ManufacturingHistory lists production audit rows for a product
func (h *StockHandler) ManufacturingHistory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	records, err := h.productionService.ManufacturingHistory(c.Request.Context(), id, shared.DefaultFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	responses := make([]stockapp.ManufacturedRecordResponse, len(records))
	for i, record := range records {
		responses[i] = stockapp.ManufacturedRecordResponse{
			ID:              record.ID.String(),
			ProductID:       record.ProductID.String(),
			Quantity:        record.Quantity,
			ManufactureDate: record.ManufactureDate.Format(time.RFC3339),
		}
	}

	h.Success(c, responses)
}
