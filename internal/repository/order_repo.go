package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inventory_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// OrderUpdate carries the optional fields of a partial order update.
// SetReceiptNow stamps receipt_date with the database clock, used when an
// order transitions to received/completed without an explicit date.
type OrderUpdate struct {
	Quantity      *int
	Status        *string
	ReceiptDate   *time.Time
	SetReceiptNow bool
}

// OrderRepository defines operations for order data
type OrderRepository interface {
	List(ctx context.Context, filters model.OrderFilters) ([]model.Order, error)
	FindByID(ctx context.Context, id int) (*model.Order, error)
	Create(ctx context.Context, o *model.Order) error
	Update(ctx context.Context, id int, upd OrderUpdate) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type orderRepository struct {
	db DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db DB) OrderRepository {
	return &orderRepository{db: db}
}

const orderSelect = `SELECT o.id, o.product_id, p.name AS product_name,
            o.quantity, o.status, o.order_date, o.receipt_date, o.user_id
            FROM orders o
            JOIN products p ON p.id = o.product_id`

// List retrieves orders with optional filters, newest first
func (r *orderRepository) List(ctx context.Context, filters model.OrderFilters) ([]model.Order, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(orderSelect)

	args := []interface{}{}
	argCount := 1
	var conditions []string

	if filters.From != nil {
		conditions = append(conditions, fmt.Sprintf("o.order_date >= $%d", argCount))
		args = append(args, *filters.From)
		argCount++
	}
	if filters.To != nil {
		conditions = append(conditions, fmt.Sprintf("o.order_date <= $%d", argCount))
		args = append(args, *filters.To)
		argCount++
	}
	if filters.Status != nil && *filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(o.status) = $%d", argCount))
		args = append(args, strings.ToLower(*filters.Status))
		argCount++
	}
	if filters.ProductID != nil {
		conditions = append(conditions, fmt.Sprintf("o.product_id = $%d", argCount))
		args = append(args, *filters.ProductID)
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY o.order_date DESC, o.id DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.ProductID, &o.ProductName, &o.Quantity, &o.Status,
			&o.OrderDate, &o.ReceiptDate, &o.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int) (*model.Order, error) {
	o := &model.Order{}
	err := r.db.QueryRow(ctx, orderSelect+` WHERE o.id = $1`, id).Scan(
		&o.ID, &o.ProductID, &o.ProductName, &o.Quantity, &o.Status,
		&o.OrderDate, &o.ReceiptDate, &o.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}
	return o, nil
}

func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	sql := `INSERT INTO orders (product_id, quantity, status, order_date, user_id)
            VALUES ($1, $2, $3, NOW(), $4) RETURNING id, order_date`
	err := r.db.QueryRow(ctx, sql, o.ProductID, o.Quantity, o.Status, o.UserID).Scan(&o.ID, &o.OrderDate)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// Update applies the non-nil fields and reports the number of affected rows
func (r *orderRepository) Update(ctx context.Context, id int, upd OrderUpdate) (int64, error) {
	var setClauses []string
	args := []interface{}{}
	argCount := 1

	if upd.Quantity != nil {
		setClauses = append(setClauses, fmt.Sprintf("quantity = $%d", argCount))
		args = append(args, *upd.Quantity)
		argCount++
	}
	if upd.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *upd.Status)
		argCount++
	}
	if upd.ReceiptDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("receipt_date = $%d", argCount))
		args = append(args, *upd.ReceiptDate)
		argCount++
	} else if upd.SetReceiptNow {
		setClauses = append(setClauses, "receipt_date = NOW()")
	}
	if len(setClauses) == 0 {
		return 0, fmt.Errorf("no fields to update")
	}

	sql := fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argCount)
	args = append(args, id)

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update order: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *orderRepository) Delete(ctx context.Context, id int) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete order: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
