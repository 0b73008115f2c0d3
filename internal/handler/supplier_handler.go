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

// SupplierHandler exposes the supplier endpoints
type SupplierHandler struct {
	service service.SupplierService
	pdf     *export.PDFExporter
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(service service.SupplierService, pdf *export.PDFExporter) *SupplierHandler {
	return &SupplierHandler{service: service, pdf: pdf}
}

// RegisterSupplierRoutes wires the supplier endpoints onto the router group
func RegisterSupplierRoutes(rg *gin.RouterGroup, h *SupplierHandler, authMW, adminMW gin.HandlerFunc) {
	suppliers := rg.Group("/suppliers", authMW)
	{
		suppliers.GET("", h.List)
		suppliers.POST("", adminMW, h.Create)
		suppliers.PUT("/:id", adminMW, h.Update)
		suppliers.DELETE("/:id", adminMW, h.Delete)
		suppliers.GET("/export/csv", adminMW, h.ExportCSV)
		suppliers.GET("/export/pdf", adminMW, h.ExportPDF)
	}
}

func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "listing suppliers")
		return
	}
	if suppliers == nil {
		suppliers = []model.Supplier{}
	}
	response.OK(c, http.StatusOK, suppliers)
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var req model.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "name is required")
		return
	}

	supplier, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "creating supplier")
		return
	}
	response.OK(c, http.StatusCreated, supplier)
}

func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "Invalid supplier ID")
		return
	}

	var req model.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		respondServiceError(c, err, "updating supplier")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"message": "Supplier updated successfully"})
}

func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "Invalid supplier ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "deleting supplier")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
}

func (h *SupplierHandler) ExportCSV(c *gin.Context) {
	writeCSVExport(c, "suppliers.csv", func(c *gin.Context) ([]string, [][]string, error) {
		return h.service.ExportRows(c.Request.Context())
	})
}

func (h *SupplierHandler) ExportPDF(c *gin.Context) {
	writePDFExport(c, h.pdf, "suppliers.pdf", "Suppliers", func(c *gin.Context) ([]string, [][]string, error) {
		return h.service.ExportRows(c.Request.Context())
	})
}
