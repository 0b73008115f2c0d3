package service

import (
	"context"
	"fmt"
	"time"

	"inventory_api/internal/model"
	"inventory_api/internal/repository"
	"inventory_api/internal/utils"
)

// AuthResult is what a successful login or registration returns
type AuthResult struct {
	Token    string `json:"token"`
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AuthService handles registration and credential checks
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
}

type authService struct {
	repo    repository.UserRepository
	jwtUtil *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(repo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{repo: repo, jwtUtil: jwtUtil}
}

// Register creates an account and signs a token for it. The role is
// normalized before anything touches the database, so a bad role never
// leaves a partial write behind.
func (s *authService) Register(ctx context.Context, username, password, role string) (*AuthResult, error) {
	normalized, ok := model.NormalizeRole(role)
	if !ok {
		return nil, fmt.Errorf("%w: role must be 'user' or 'admin'", ErrValidation)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
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

	token, err := s.jwtUtil.IssueToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResult{Token: token, ID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// Login verifies credentials and signs a token. The token carries the role
// stored on the account, not anything the client sent.
func (s *authService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtUtil.IssueToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResult{Token: token, ID: user.ID, Username: user.Username, Role: user.Role}, nil
}
