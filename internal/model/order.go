package model

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusReceived  = "received"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is an accepted order status.
// Both spellings of "cancelled" occur in existing data.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusReceived, OrderStatusCompleted, OrderStatusCancelled, "canceled":
		return true
	}
	return false
}

// Order represents a purchase order for a product
type Order struct {
	ID          int        `json:"id"`
	ProductID   int        `json:"product_id"`
	ProductName string     `json:"product_name"`
	Quantity    int        `json:"quantity"`
	Status      string     `json:"status"`
	OrderDate   time.Time  `json:"order_date"`
	ReceiptDate *time.Time `json:"receipt_date"`
	UserID      int        `json:"user_id"`
}

// CreateOrderRequest is used for placing a new order
type CreateOrderRequest struct {
	ProductID *int   `json:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required"`
	Status    string `json:"status"`
}

// UpdateOrderRequest carries a partial order update; nil fields are untouched
type UpdateOrderRequest struct {
	Quantity    *int       `json:"quantity,omitempty"`
	Status      *string    `json:"status,omitempty"`
	ReceiptDate *time.Time `json:"receipt_date,omitempty"`
}

// OrderFilters contains optional filter parameters for order listings
type OrderFilters struct {
	From      *time.Time
	To        *time.Time
	Status    *string
	ProductID *int
}
