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

// ProductHandler exposes the product endpoints
type ProductHandler struct {
	service service.ProductService
	pdf     *export.PDFExporter
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(service service.ProductService, pdf *export.PDFExporter) *ProductHandler {
	return &ProductHandler{service: service, pdf: pdf}
}

// RegisterProductRoutes wires the product endpoints onto the router group.
// Reads require authentication; writes and exports require admin.
func RegisterProductRoutes(rg *gin.RouterGroup, h *ProductHandler, authMW, adminMW gin.HandlerFunc) {
	products := rg.Group("/products", authMW)
	{
		products.GET("", h.List)
		products.POST("", adminMW, h.Create)
		products.PUT("/:id", adminMW, h.Update)
		products.DELETE("/:id", adminMW, h.Delete)
		products.GET("/export/csv", adminMW, h.ExportCSV)
		products.GET("/export/pdf", adminMW, h.ExportPDF)
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "listing products")
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	response.OK(c, http.StatusOK, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req model.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation,
			"name, price, stock and category_id are required; price and stock must be non-negative")
		return
	}

	product, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "creating product")
		return
	}
	response.OK(c, http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "Invalid product ID")
		return
	}

	var req model.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation,
			"name, price, stock and category_id are required; price and stock must be non-negative")
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		respondServiceError(c, err, "updating product")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"message": "Product updated successfully"})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "Invalid product ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "deleting product")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *ProductHandler) ExportCSV(c *gin.Context) {
	writeCSVExport(c, "products.csv", func(c *gin.Context) ([]string, [][]string, error) {
		return h.service.ExportRows(c.Request.Context())
	})
}

func (h *ProductHandler) ExportPDF(c *gin.Context) {
	writePDFExport(c, h.pdf, "products.pdf", "Products", func(c *gin.Context) ([]string, [][]string, error) {
		return h.service.ExportRows(c.Request.Context())
	})
}
