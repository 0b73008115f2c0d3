package service

import (
	"context"
	"fmt"
	"time"

	"inventory_api/internal/model"
	"inventory_api/internal/repository"
	"inventory_api/internal/utils"
)

// UserService handles admin-side account management
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id int) (*model.User, error)
	Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	Update(ctx context.Context, id int, req model.UpdateUserRequest) error
	Delete(ctx context.Context, id int) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id int) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	normalized, ok := model.NormalizeRole(req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: role must be 'user' or 'admin'", ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         normalized,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: username already taken", ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id int, req model.UpdateUserRequest) error {
	upd := repository.UserUpdate{Username: req.Username}

	if req.Role != nil {
		normalized, ok := model.NormalizeRole(*req.Role)
		if !ok {
			return fmt.Errorf("%w: role must be 'user' or 'admin'", ErrValidation)
		}
		upd.Role = &normalized
	}
	if req.Password != nil {
		if *req.Password == "" {
			return fmt.Errorf("%w: password must not be empty", ErrValidation)
		}
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		upd.PasswordHash = &hash
	}
	if upd.Username == nil && upd.Role == nil && upd.PasswordHash == nil {
		return fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	affected, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return fmt.Errorf("%w: username already taken", ErrConflict)
		}
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *userService) Delete(ctx context.Context, id int) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
