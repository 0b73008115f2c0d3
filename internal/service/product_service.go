package service

import (
	"context"
	"fmt"
	"strconv"

	"inventory_api/internal/model"
	"inventory_api/internal/repository"
)

// ProductService handles product management and export row preparation
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, req model.ProductRequest) (*model.Product, error)
	Update(ctx context.Context, id int, req model.ProductRequest) error
	Delete(ctx context.Context, id int) error
	ExportRows(ctx context.Context) (header []string, rows [][]string, err error)
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new ProductService
func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo}
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

func (s *productService) Create(ctx context.Context, req model.ProductRequest) (*model.Product, error) {
	exists, err := s.categoryRepo.Exists(ctx, *req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: category does not exist", ErrNotFound)
	}

	product := &model.Product{
		Name:       req.Name,
		Price:      *req.Price,
		Stock:      *req.Stock,
		CategoryID: *req.CategoryID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, id int, req model.ProductRequest) error {
	exists, err := s.categoryRepo.Exists(ctx, *req.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: category does not exist", ErrNotFound)
	}

	product := &model.Product{
		ID:         id,
		Name:       req.Name,
		Price:      *req.Price,
		Stock:      *req.Stock,
		CategoryID: *req.CategoryID,
	}
	affected, err := s.repo.Update(ctx, product)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *productService) Delete(ctx context.Context, id int) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: product has orders referencing it", ErrConflict)
		}
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ExportRows flattens the product list into tabular form shared by the
// CSV and PDF exporters
func (s *productService) ExportRows(ctx context.Context) ([]string, [][]string, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	header := []string{"ID", "Name", "Price", "Stock", "Category"}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Name,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			strconv.Itoa(p.Stock),
			p.CategoryName,
		})
	}
	return header, rows, nil
}
