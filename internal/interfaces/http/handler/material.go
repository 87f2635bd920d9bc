package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/packerp/backend/internal/application/catalog"
	"github.com/packerp/backend/internal/interfaces/http/middleware"
)

// MaterialHandler handles plate and carton API endpoints
type MaterialHandler struct {
	BaseHandler
	materialService *catalogapp.MaterialService
}

// NewMaterialHandler creates a new MaterialHandler
func NewMaterialHandler(materialService *catalogapp.MaterialService) *MaterialHandler {
	return &MaterialHandler{
		materialService: materialService,
	}
}

// RegisterRoutes registers plate and carton routes
func (h *MaterialHandler) RegisterRoutes(rg *gin.RouterGroup) {
	plates := rg.Group("/plate")
	{
		plates.POST("", h.CreatePlate)
		plates.GET("/:id", h.GetPlate)
		plates.DELETE("/:id", h.DeletePlate)
	}

	cartons := rg.Group("/carton")
	{
		cartons.POST("", h.CreateCarton)
		cartons.GET("/:id", h.GetCarton)
		cartons.DELETE("/:id", h.DeleteCarton)
	}
}

// CreatePlate registers a new printing plate
func (h *MaterialHandler) CreatePlate(c *gin.Context) {
	var req catalogapp.CreatePlateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.FormatBindingError(err))
		return
	}

	plate, err := h.materialService.CreatePlate(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, plate)
}

// GetPlate retrieves a plate by its ID
func (h *MaterialHandler) GetPlate(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid plate ID format")
		return
	}

	plate, err := h.materialService.GetPlate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, plate)
}

// DeletePlate soft-deletes a plate
func (h *MaterialHandler) DeletePlate(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid plate ID format")
		return
	}

	if err := h.materialService.DeletePlate(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateCarton registers a new carton type
func (h *MaterialHandler) CreateCarton(c *gin.Context) {
	var req catalogapp.CreateCartonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.FormatBindingError(err))
		return
	}

	carton, err := h.materialService.CreateCarton(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, carton)
}

// GetCarton retrieves a carton by its ID
func (h *MaterialHandler) GetCarton(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid carton ID format")
		return
	}

	carton, err := h.materialService.GetCarton(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, carton)
}

// DeleteCarton soft-deletes a carton
func (h *MaterialHandler) DeleteCarton(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid carton ID format")
		return
	}

	if err := h.materialService.DeleteCarton(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
