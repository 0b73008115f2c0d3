package handler

import (
	"net/http"
	"strconv"

	"inventory_api/internal/export"
	"inventory_api/internal/response"
	"inventory_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler exposes the reporting and dashboard endpoints
type ReportHandler struct {
	service service.ReportService
	pdf     *export.PDFExporter
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service service.ReportService, pdf *export.PDFExporter) *ReportHandler {
	return &ReportHandler{service: service, pdf: pdf}
}

// RegisterReportRoutes wires the report and dashboard endpoints onto the
// router group. Reports are readable by any authenticated user.
func RegisterReportRoutes(rg *gin.RouterGroup, h *ReportHandler, authMW gin.HandlerFunc) {
	reports := rg.Group("/reports", authMW)
	{
		reports.GET("/stock-by-category", h.StockByCategory)
		reports.GET("/stock-by-category/export/csv", h.StockByCategoryCSV)
		reports.GET("/stock-by-category/export/pdf", h.StockByCategoryPDF)
		reports.GET("/orders-history", h.OrdersHistory)
		reports.GET("/orders-history/export/csv", h.OrdersHistoryCSV)
		reports.GET("/orders-history/export/pdf", h.OrdersHistoryPDF)
		reports.GET("/low-stock", h.LowStock)
		reports.GET("/low-stock/export/csv", h.LowStockCSV)
		reports.GET("/low-stock/export/pdf", h.LowStockPDF)
	}
	rg.GET("/dashboard/metrics", authMW, h.Metrics)
}

func (h *ReportHandler) StockByCategory(c *gin.Context) {
	result, err := h.service.StockByCategory(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "stock-by-category report")
		return
	}
	response.OK(c, http.StatusOK, result)
}

func (h *ReportHandler) OrdersHistory(c *gin.Context) {
	result, err := h.service.OrdersHistory(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "orders-history report")
		return
	}
	response.OK(c, http.StatusOK, result)
}

func (h *ReportHandler) LowStock(c *gin.Context) {
	threshold, ok := parseThreshold(c)
	if !ok {
		return
	}
	result, err := h.service.LowStock(c.Request.Context(), threshold)
	if err != nil {
		respondServiceError(c, err, "low-stock report")
		return
	}
	response.OK(c, http.StatusOK, result)
}

func (h *ReportHandler) Metrics(c *gin.Context) {
	metrics, err := h.service.Metrics(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "dashboard metrics")
		return
	}
	response.OK(c, http.StatusOK, metrics)
}

// parseThreshold reads the optional low-stock threshold. Zero means
// "use the default"; the service fills it in.
func parseThreshold(c *gin.Context) (int, bool) {
	raw := c.Query("threshold")
	if raw == "" {
		return 0, true
	}
	threshold, err := strconv.Atoi(raw)
	if err != nil || threshold < 0 {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "threshold must be a non-negative integer")
		return 0, false
	}
	return threshold, true
}

func (h *ReportHandler) stockByCategoryRows(c *gin.Context) ([]string, [][]string, error) {
	result, err := h.service.StockByCategory(c.Request.Context())
	if err != nil {
		return nil, nil, err
	}
	rows := make([][]string, 0, len(result))
	for _, cs := range result {
		rows = append(rows, []string{cs.Category, strconv.FormatInt(cs.TotalStock, 10)})
	}
	return []string{"Category", "Total Stock"}, rows, nil
}

func (h *ReportHandler) ordersHistoryRows(c *gin.Context) ([]string, [][]string, error) {
	result, err := h.service.OrdersHistory(c.Request.Context())
	if err != nil {
		return nil, nil, err
	}
	rows := make([][]string, 0, len(result))
	for _, mo := range result {
		rows = append(rows, []string{mo.Month, strconv.FormatInt(mo.Count, 10)})
	}
	return []string{"Month", "Orders"}, rows, nil
}

func (h *ReportHandler) lowStockRows(c *gin.Context) ([]string, [][]string, error) {
	threshold, _ := strconv.Atoi(c.Query("threshold"))
	result, err := h.service.LowStock(c.Request.Context(), threshold)
	if err != nil {
		return nil, nil, err
	}
	rows := make([][]string, 0, len(result))
	for _, lp := range result {
		category := ""
		if lp.Category != nil {
			category = *lp.Category
		}
		rows = append(rows, []string{strconv.Itoa(lp.ID), lp.Name, strconv.Itoa(lp.Stock), category})
	}
	return []string{"ID", "Name", "Stock", "Category"}, rows, nil
}

func (h *ReportHandler) StockByCategoryCSV(c *gin.Context) {
	writeCSVExport(c, "stock_by_category.csv", h.stockByCategoryRows)
}

func (h *ReportHandler) StockByCategoryPDF(c *gin.Context) {
	writePDFExport(c, h.pdf, "stock_by_category.pdf", "Stock by Category", h.stockByCategoryRows)
}

func (h *ReportHandler) OrdersHistoryCSV(c *gin.Context) {
	writeCSVExport(c, "orders_history.csv", h.ordersHistoryRows)
}

func (h *ReportHandler) OrdersHistoryPDF(c *gin.Context) {
	writePDFExport(c, h.pdf, "orders_history.pdf", "Orders History", h.ordersHistoryRows)
}

func (h *ReportHandler) LowStockCSV(c *gin.Context) {
	writeCSVExport(c, "low_stock.csv", h.lowStockRows)
}

func (h *ReportHandler) LowStockPDF(c *gin.Context) {
	writePDFExport(c, h.pdf, "low_stock.pdf", "Low Stock Products", h.lowStockRows)
}
