package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/packerp/backend/internal/application/catalog"
	"github.com/packerp/backend/internal/interfaces/http/middleware"
)

// PackageHandler handles packaging configuration API endpoints
type PackageHandler struct {
	BaseHandler
	packageService *catalogapp.PackageService
}

// NewPackageHandler creates a new PackageHandler
func NewPackageHandler(packageService *catalogapp.PackageService) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
	}
}

// RegisterRoutes registers package routes
func (h *PackageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	packages := rg.Group("/package")
	{
		packages.POST("", h.Create)
		packages.GET("", h.List)
		packages.GET("/:id", h.GetByID)
		packages.PUT("/:id", h.Update)
		packages.DELETE("/:id", h.Delete)
	}
}

// Create creates a new packaging configuration
func (h *PackageHandler) Create(c *gin.Context) {
	var req catalogapp.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.FormatBindingError(err))
		return
	}

	pkg, err := h.packageService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, pkg)
}

// GetByID retrieves a package by its ID
func (h *PackageHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid package ID format")
		return
	}

	pkg, err := h.packageService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, pkg)
}

// List lists packages with pagination
func (h *PackageHandler) List(c *gin.Context) {
	var filter catalogapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, middleware.FormatBindingError(err))
		return
	}

	page, err := h.packageService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update updates a packaging configuration
func (h *PackageHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid package ID format")
		return
	}

	var req catalogapp.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.FormatBindingError(err))
		return
	}

	pkg, err := h.packageService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, pkg)
}

// Delete soft-deletes a packaging configuration
func (h *PackageHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid package ID format")
		return
	}

	if err := h.packageService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
