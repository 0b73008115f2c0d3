package model

// CategoryStock is one row of the stock-by-category report
type CategoryStock struct {
	Category   string `json:"category"`
	TotalStock int64  `json:"total_stock"`
}

// MonthOrders is one row of the orders-history report
type MonthOrders struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// LowStockProduct is one row of the low-stock report
type LowStockProduct struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Stock    int     `json:"stock"`
	Category *string `json:"category"`
}

// DashboardMetrics holds the headline counters for the dashboard
type DashboardMetrics struct {
	Products    int64 `json:"products"`
	Categories  int64 `json:"categories"`
	Suppliers   int64 `json:"suppliers"`
	OrdersToday int64 `json:"orders_today"`
	LowStock    int64 `json:"low_stock"`
}
