package service

import (
	"context"
	"fmt"
	"strconv"

	"inventory_api/internal/model"
	"inventory_api/internal/repository"
)

// SupplierService handles supplier management
type SupplierService interface {
	List(ctx context.Context) ([]model.Supplier, error)
	Create(ctx context.Context, req model.CreateSupplierRequest) (*model.Supplier, error)
	Update(ctx context.Context, id int, req model.UpdateSupplierRequest) error
	Delete(ctx context.Context, id int) error
	ExportRows(ctx context.Context) (header []string, rows [][]string, err error)
}

type supplierService struct {
	repo repository.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) List(ctx context.Context) ([]model.Supplier, error) {
	return s.repo.List(ctx)
}

func (s *supplierService) Create(ctx context.Context, req model.CreateSupplierRequest) (*model.Supplier, error) {
	supplier := &model.Supplier{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Contact: req.Contact,
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) Update(ctx context.Context, id int, req model.UpdateSupplierRequest) error {
	if req.Name == nil && req.Email == nil && req.Phone == nil && req.Contact == nil {
		return fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	if req.Name != nil && *req.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}

	upd := repository.SupplierUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Contact: req.Contact,
	}
	affected, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *supplierService) Delete(ctx context.Context, id int) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ExportRows flattens the supplier list into tabular form shared by the
// CSV and PDF exporters
func (s *supplierService) ExportRows(ctx context.Context) ([]string, [][]string, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	deref := func(v *string) string {
		if v == nil {
			return ""
		}
		return *v
	}

	header := []string{"ID", "Name", "Email", "Phone", "Contact"}
	rows := make([][]string, 0, len(suppliers))
	for _, sup := range suppliers {
		rows = append(rows, []string{
			strconv.Itoa(sup.ID),
			sup.Name,
			deref(sup.Email),
			deref(sup.Phone),
			deref(sup.Contact),
		})
	}
	return header, rows, nil
}
