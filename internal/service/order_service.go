package service

import (
	"context"
	"fmt"

	"inventory_api/internal/model"
	"inventory_api/internal/repository"
)

// OrderService handles order management
type OrderService interface {
	List(ctx context.Context, filters model.OrderFilters) ([]model.Order, error)
	Get(ctx context.Context, id int) (*model.Order, error)
	Create(ctx context.Context, userID int, req model.CreateOrderRequest) (*model.Order, error)
	Update(ctx context.Context, id int, req model.UpdateOrderRequest) (*model.Order, error)
	Delete(ctx context.Context, id int) error
}

type orderService struct {
	repo        repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(repo repository.OrderRepository, productRepo repository.ProductRepository) OrderService {
	return &orderService{repo: repo, productRepo: productRepo}
}

func (s *orderService) List(ctx context.Context, filters model.OrderFilters) ([]model.Order, error) {
	if filters.Status != nil && *filters.Status != "" && !model.ValidOrderStatus(*filters.Status) {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, *filters.Status)
	}
	return s.repo.List(ctx, filters)
}

func (s *orderService) Get(ctx context.Context, id int) (*model.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

func (s *orderService) Create(ctx context.Context, userID int, req model.CreateOrderRequest) (*model.Order, error) {
	if *req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	status := req.Status
	if status == "" {
		status = model.OrderStatusPending
	}
	if !model.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, status)
	}

	exists, err := s.productRepo.Exists(ctx, *req.ProductID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: product does not exist", ErrValidation)
	}

	order := &model.Order{
		ProductID: *req.ProductID,
		Quantity:  *req.Quantity,
		Status:    status,
		UserID:    userID,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Update applies a partial change. Moving an order into received or
// completed without an explicit receipt date stamps it with the current
// time, mirroring how goods intake is recorded.
func (s *orderService) Update(ctx context.Context, id int, req model.UpdateOrderRequest) (*model.Order, error) {
	if req.Quantity == nil && req.Status == nil && req.ReceiptDate == nil {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	if req.Quantity != nil && *req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}

	upd := repository.OrderUpdate{
		Quantity:    req.Quantity,
		ReceiptDate: req.ReceiptDate,
	}
	if req.Status != nil {
		if !model.ValidOrderStatus(*req.Status) {
			return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, *req.Status)
		}
		upd.Status = req.Status
		if (*req.Status == model.OrderStatusReceived || *req.Status == model.OrderStatusCompleted) && req.ReceiptDate == nil {
			upd.SetReceiptNow = true
		}
	}

	affected, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.repo.FindByID(ctx, id)
}

func (s *orderService) Delete(ctx context.Context, id int) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
