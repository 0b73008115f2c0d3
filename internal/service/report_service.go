package service

import (
	"context"

	"inventory_api/internal/model"
	"inventory_api/internal/repository"
)

// DefaultLowStockThreshold is used when a report request does not set one
const DefaultLowStockThreshold = 5

// ReportService assembles the reporting and dashboard payloads
type ReportService interface {
	StockByCategory(ctx context.Context) ([]model.CategoryStock, error)
	OrdersHistory(ctx context.Context) ([]model.MonthOrders, error)
	LowStock(ctx context.Context, threshold int) ([]model.LowStockProduct, error)
	Metrics(ctx context.Context) (*model.DashboardMetrics, error)
}

type reportService struct {
	repo repository.ReportRepository
}

// NewReportService creates a new ReportService
func NewReportService(repo repository.ReportRepository) ReportService {
	return &reportService{repo: repo}
}

func (s *reportService) StockByCategory(ctx context.Context) ([]model.CategoryStock, error) {
	result, err := s.repo.StockByCategory(ctx)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []model.CategoryStock{}
	}
	return result, nil
}

func (s *reportService) OrdersHistory(ctx context.Context) ([]model.MonthOrders, error) {
	result, err := s.repo.OrdersHistory(ctx)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []model.MonthOrders{}
	}
	return result, nil
}

func (s *reportService) LowStock(ctx context.Context, threshold int) ([]model.LowStockProduct, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	result, err := s.repo.LowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []model.LowStockProduct{}
	}
	return result, nil
}

func (s *reportService) Metrics(ctx context.Context) (*model.DashboardMetrics, error) {
	return s.repo.Metrics(ctx)
}
