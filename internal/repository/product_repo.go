package repository

import (
	"context"
	"fmt"

	"inventory_api/internal/model"
)

// ProductRepository defines operations for product data
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
	Exists(ctx context.Context, id int) (bool, error)
}

type productRepository struct {
	db DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db DB) ProductRepository {
	return &productRepository{db: db}
}

// List returns all products joined with their category name, newest first
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	sql := `SELECT p.id, p.name, p.price, p.stock, p.category_id, c.name AS category_name
            FROM products p
            JOIN categories c ON p.category_id = c.id
            ORDER BY p.id DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.CategoryID, &p.CategoryName); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	sql := `INSERT INTO products (name, price, stock, category_id)
            VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, sql, p.Name, p.Price, p.Stock, p.CategoryID).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *productRepository) Update(ctx context.Context, p *model.Product) (int64, error) {
	sql := `UPDATE products SET name = $1, price = $2, stock = $3, category_id = $4 WHERE id = $5`
	cmdTag, err := r.db.Exec(ctx, sql, p.Name, p.Price, p.Stock, p.CategoryID, p.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update product: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *productRepository) Delete(ctx context.Context, id int) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete product: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *productRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return exists, nil
}
