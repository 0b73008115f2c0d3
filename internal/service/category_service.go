package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"inventory_api/internal/model"
	"inventory_api/internal/repository"

	"github.com/jackc/pgx/v5"
)

// CategoryService handles category management, including the guarded delete
type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, id int, name string) error
	Delete(ctx context.Context, id int, reassignTo *int) error
	ExportRows(ctx context.Context) (header []string, rows [][]string, err error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	id, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return &model.Category{ID: id, Name: name}, nil
}

func (s *categoryService) Update(ctx context.Context, id int, name string) error {
	affected, err := s.repo.Update(ctx, id, name)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a category. A category that still has products cannot be
// deleted outright; the caller must name another category to take them,
// and the reassignment and deletion happen in one transaction.
func (s *categoryService) Delete(ctx context.Context, id int, reassignTo *int) error {
	count, err := s.repo.CountProducts(ctx, id)
	if err != nil {
		return err
	}

	if count == 0 && reassignTo == nil {
		affected, err := s.repo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	}

	if reassignTo == nil {
		return fmt.Errorf("%w: category has %d products; provide reassign_to", ErrConflict, count)
	}
	if *reassignTo == id {
		return fmt.Errorf("%w: cannot reassign products to the category being deleted", ErrValidation)
	}
	exists, err := s.repo.Exists(ctx, *reassignTo)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: reassign target category does not exist", ErrValidation)
	}

	if err := s.repo.DeleteWithReassign(ctx, id, *reassignTo); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ExportRows flattens the category list into tabular form shared by the
// CSV and PDF exporters
func (s *categoryService) ExportRows(ctx context.Context) ([]string, [][]string, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	header := []string{"ID", "Name"}
	rows := make([][]string, 0, len(categories))
	for _, cat := range categories {
		rows = append(rows, []string{strconv.Itoa(cat.ID), cat.Name})
	}
	return header, rows, nil
}
