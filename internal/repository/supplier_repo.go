package repository

import (
	"context"
	"fmt"
	"strings"

	"inventory_api/internal/model"
)

// SupplierUpdate carries the optional fields of a partial supplier update
type SupplierUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Contact *string
}

// SupplierRepository defines operations for supplier data
type SupplierRepository interface {
	List(ctx context.Context) ([]model.Supplier, error)
	Create(ctx context.Context, s *model.Supplier) error
	Update(ctx context.Context, id int, upd SupplierUpdate) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type supplierRepository struct {
	db DB
}

// NewSupplierRepository creates a new SupplierRepository
func NewSupplierRepository(db DB) SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) List(ctx context.Context) ([]model.Supplier, error) {
	sql := `SELECT id, name, email, phone, contact FROM suppliers ORDER BY id DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []model.Supplier
	for rows.Next() {
		var s model.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Contact); err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}
	return suppliers, nil
}

func (r *supplierRepository) Create(ctx context.Context, s *model.Supplier) error {
	sql := `INSERT INTO suppliers (name, email, phone, contact)
            VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, sql, s.Name, s.Email, s.Phone, s.Contact).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

// Update applies the non-nil fields and reports the number of affected rows
func (r *supplierRepository) Update(ctx context.Context, id int, upd SupplierUpdate) (int64, error) {
	var setClauses []string
	args := []interface{}{}
	argCount := 1

	if upd.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argCount))
		args = append(args, *upd.Name)
		argCount++
	}
	if upd.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argCount))
		args = append(args, *upd.Email)
		argCount++
	}
	if upd.Phone != nil {
		setClauses = append(setClauses, fmt.Sprintf("phone = $%d", argCount))
		args = append(args, *upd.Phone)
		argCount++
	}
	if upd.Contact != nil {
		setClauses = append(setClauses, fmt.Sprintf("contact = $%d", argCount))
		args = append(args, *upd.Contact)
		argCount++
	}
	if len(setClauses) == 0 {
		return 0, fmt.Errorf("no fields to update")
	}

	sql := fmt.Sprintf("UPDATE suppliers SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argCount)
	args = append(args, id)

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update supplier: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *supplierRepository) Delete(ctx context.Context, id int) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete supplier: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
