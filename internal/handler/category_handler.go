package handler

import (
	"net/http"
	"strconv"

	"inventory_api/internal/export"
	"inventory_api/internal/model"
	"inventory_api/internal/response"
	"inventory_api/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler exposes the category endpoints
type CategoryHandler struct {
	service service.CategoryService
	pdf     *export.PDFExporter
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(service service.CategoryService, pdf *export.PDFExporter) *CategoryHandler {
	return &CategoryHandler{service: service, pdf: pdf}
}

// RegisterCategoryRoutes wires the category endpoints onto the router group
func RegisterCategoryRoutes(rg *gin.RouterGroup, h *CategoryHandler, authMW, adminMW gin.HandlerFunc) {
	categories := rg.Group("/categories", authMW)
	{
		categories.GET("", h.List)
		categories.POST("", adminMW, h.Create)
		categories.PUT("/:id", adminMW, h.Update)
		categories.DELETE("/:id", adminMW, h.Delete)
		categories.GET("/export/csv", adminMW, h.ExportCSV)
		categories.GET("/export/pdf", adminMW, h.ExportPDF)
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "listing categories")
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	response.OK(c, http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req model.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "name is required")
		return
	}

	category, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondServiceError(c, err, "creating category")
		return
	}
	response.OK(c, http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "Invalid category ID")
		return
	}

	var req model.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "name is required")
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req.Name); err != nil {
		respondServiceError(c, err, "updating category")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"message": "Category updated successfully"})
}

// Delete removes a category. When the category still holds products the
// caller must pass ?reassign_to=<id> naming the category that takes them.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "Invalid category ID")
		return
	}

	var reassignTo *int
	if raw := c.Query("reassign_to"); raw != "" {
		target, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeValidation, "reassign_to must be a category ID")
			return
		}
		reassignTo = &target
	}

	if err := h.service.Delete(c.Request.Context(), id, reassignTo); err != nil {
		respondServiceError(c, err, "deleting category")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

func (h *CategoryHandler) ExportCSV(c *gin.Context) {
	writeCSVExport(c, "categories.csv", func(c *gin.Context) ([]string, [][]string, error) {
		return h.service.ExportRows(c.Request.Context())
	})
}

func (h *CategoryHandler) ExportPDF(c *gin.Context) {
	writePDFExport(c, h.pdf, "categories.pdf", "Categories", func(c *gin.Context) ([]string, [][]string, error) {
		return h.service.ExportRows(c.Request.Context())
	})
}
