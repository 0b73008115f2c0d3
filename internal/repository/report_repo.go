package repository

import (
	"context"
	"fmt"

	"inventory_api/internal/model"
)

// ReportRepository runs the aggregate queries behind reports and the dashboard
type ReportRepository interface {
	StockByCategory(ctx context.Context) ([]model.CategoryStock, error)
	OrdersHistory(ctx context.Context) ([]model.MonthOrders, error)
	LowStock(ctx context.Context, threshold int) ([]model.LowStockProduct, error)
	Metrics(ctx context.Context) (*model.DashboardMetrics, error)
}

type reportRepository struct {
	db DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) StockByCategory(ctx context.Context) ([]model.CategoryStock, error) {
	sql := `SELECT c.name AS category, COALESCE(SUM(p.stock), 0) AS total_stock
            FROM categories c
            LEFT JOIN products p ON p.category_id = c.id
            GROUP BY c.id, c.name
            ORDER BY c.name`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock by category: %w", err)
	}
	defer rows.Close()

	var result []model.CategoryStock
	for rows.Next() {
		var cs model.CategoryStock
		if err := rows.Scan(&cs.Category, &cs.TotalStock); err != nil {
			return nil, fmt.Errorf("failed to scan stock by category row: %w", err)
		}
		result = append(result, cs)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock by category rows: %w", err)
	}
	return result, nil
}

// OrdersHistory counts orders per month over the last 12 months.
// Months without orders appear with a zero count.
func (r *reportRepository) OrdersHistory(ctx context.Context) ([]model.MonthOrders, error) {
	sql := `SELECT to_char(m.month, 'YYYY-MM') AS month, COUNT(o.id) AS count
            FROM generate_series(
                date_trunc('month', NOW()) - INTERVAL '11 months',
                date_trunc('month', NOW()),
                INTERVAL '1 month'
            ) AS m(month)
            LEFT JOIN orders o ON date_trunc('month', o.order_date) = m.month
            GROUP BY m.month
            ORDER BY m.month`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders history: %w", err)
	}
	defer rows.Close()

	var result []model.MonthOrders
	for rows.Next() {
		var mo model.MonthOrders
		if err := rows.Scan(&mo.Month, &mo.Count); err != nil {
			return nil, fmt.Errorf("failed to scan orders history row: %w", err)
		}
		result = append(result, mo)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders history rows: %w", err)
	}
	return result, nil
}

func (r *reportRepository) LowStock(ctx context.Context, threshold int) ([]model.LowStockProduct, error) {
	sql := `SELECT p.id, p.name, p.stock, c.name AS category
            FROM products p
            LEFT JOIN categories c ON c.id = p.category_id
            WHERE p.stock <= $1
            ORDER BY p.stock ASC, p.name ASC`
	rows, err := r.db.Query(ctx, sql, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to query low stock products: %w", err)
	}
	defer rows.Close()

	var result []model.LowStockProduct
	for rows.Next() {
		var lp model.LowStockProduct
		if err := rows.Scan(&lp.ID, &lp.Name, &lp.Stock, &lp.Category); err != nil {
			return nil, fmt.Errorf("failed to scan low stock row: %w", err)
		}
		result = append(result, lp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating low stock rows: %w", err)
	}
	return result, nil
}

// Metrics gathers the dashboard counters in one round trip
func (r *reportRepository) Metrics(ctx context.Context) (*model.DashboardMetrics, error) {
	sql := `SELECT
            (SELECT COUNT(*) FROM products) AS products,
            (SELECT COUNT(*) FROM categories) AS categories,
            (SELECT COUNT(*) FROM suppliers) AS suppliers,
            (SELECT COUNT(*) FROM orders
                WHERE order_date >= date_trunc('day', NOW())
                  AND order_date < date_trunc('day', NOW()) + INTERVAL '1 day') AS orders_today,
            (SELECT COUNT(*) FROM products WHERE stock <= 5) AS low_stock`
	m := &model.DashboardMetrics{}
	err := r.db.QueryRow(ctx, sql).Scan(&m.Products, &m.Categories, &m.Suppliers, &m.OrdersToday, &m.LowStock)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard metrics: %w", err)
	}
	return m, nil
}
