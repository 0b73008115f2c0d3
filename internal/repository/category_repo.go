package repository

import (
	"context"
	"fmt"

	"inventory_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// CategoryRepository defines operations for category data
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, name string) (int, error)
	Update(ctx context.Context, id int, name string) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
	Exists(ctx context.Context, id int) (bool, error)
	CountProducts(ctx context.Context, categoryID int) (int64, error)
	DeleteWithReassign(ctx context.Context, id, reassignTo int) error
}

type categoryRepository struct {
	db DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM categories ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, cat)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) Create(ctx context.Context, name string) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create category: %w", err)
	}
	return id, nil
}

func (r *categoryRepository) Update(ctx context.Context, id int, name string) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE categories SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update category: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete category: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *categoryRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}
	return exists, nil
}

func (r *categoryRepository) CountProducts(ctx context.Context, categoryID int) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products in category: %w", err)
	}
	return count, nil
}

// DeleteWithReassign moves the category's products to reassignTo and then
// deletes the category, inside one transaction. Either both steps commit or
// neither does.
func (r *categoryRepository) DeleteWithReassign(ctx context.Context, id, reassignTo int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE products SET category_id = $1 WHERE category_id = $2`, reassignTo, id); err != nil {
		return fmt.Errorf("failed to reassign products: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit category deletion: %w", err)
	}
	return nil
}
