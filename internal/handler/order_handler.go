package handler

import (
	"net/http"
	"strconv"
	"time"

	"inventory_api/internal/middleware"
	"inventory_api/internal/model"
	"inventory_api/internal/response"
	"inventory_api/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the order endpoints
type OrderHandler struct {
	service service.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(service service.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterOrderRoutes wires the order endpoints onto the router group.
// Any authenticated user can list, read and place orders; changing or
// removing one is admin-only.
func RegisterOrderRoutes(rg *gin.RouterGroup, h *OrderHandler, authMW, adminMW gin.HandlerFunc) {
	orders := rg.Group("/orders", authMW)
	{
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
		orders.POST("", h.Create)
		orders.PUT("/:id", adminMW, h.Update)
		orders.DELETE("/:id", adminMW, h.Delete)
	}
}

// parseOrderFilters reads the optional from/to/status/product_id query
// parameters. Dates accept YYYY-MM-DD or full RFC 3339 timestamps.
func parseOrderFilters(c *gin.Context) (model.OrderFilters, bool) {
	var filters model.OrderFilters

	parseDate := func(raw string) (*time.Time, bool) {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			return &t, true
		}
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return &t, true
		}
		return nil, false
	}

	if raw := c.Query("from"); raw != "" {
		t, ok := parseDate(raw)
		if !ok {
			response.Fail(c, http.StatusBadRequest, response.CodeValidation, "from must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
			return filters, false
		}
		filters.From = t
	}
	if raw := c.Query("to"); raw != "" {
		t, ok := parseDate(raw)
		if !ok {
			response.Fail(c, http.StatusBadRequest, response.CodeValidation, "to must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
			return filters, false
		}
		filters.To = t
	}
	if raw := c.Query("status"); raw != "" {
		filters.Status = &raw
	}
	if raw := c.Query("product_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeValidation, "product_id must be an integer")
			return filters, false
		}
		filters.ProductID = &id
	}
	return filters, true
}

func (h *OrderHandler) List(c *gin.Context) {
	filters, ok := parseOrderFilters(c)
	if !ok {
		return
	}

	orders, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err, "listing orders")
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	response.OK(c, http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "Invalid order ID")
		return
	}

	order, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "getting order")
		return
	}
	response.OK(c, http.StatusOK, order)
}

// Create places an order on behalf of the authenticated user. The owner
// comes from the token, never from the request body.
func (h *OrderHandler) Create(c *gin.Context) {
	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "product_id and quantity are required")
		return
	}

	userID := c.GetInt(middleware.AuthUserKey)
	order, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "creating order")
		return
	}
	response.OK(c, http.StatusCreated, order)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "Invalid order ID")
		return
	}

	var req model.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	order, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "updating order")
		return
	}
	response.OK(c, http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "Invalid order ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "deleting order")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
