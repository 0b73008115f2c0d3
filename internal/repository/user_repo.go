package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inventory_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserUpdate carries the optional fields of a partial user update
type UserUpdate struct {
	Username     *string
	Role         *string
	PasswordHash *string
}

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id int, upd UserUpdate) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. Duplicate usernames surface as a pg unique
// violation; callers detect it with IsUniqueViolation.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (username, password_hash, role, created_at)
            VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, sql, user.Username, user.PasswordHash, user.Role, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByUsername retrieves a user by exact, case-sensitive username match
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, username, password_hash, role, created_at FROM users WHERE username = $1`
	err := r.db.QueryRow(ctx, sql, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error here; the service decides
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, username, password_hash, role, created_at FROM users WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// List returns all users, newest first. Password hashes are not selected.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	sql := `SELECT id, username, role, created_at FROM users ORDER BY id DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// Update applies the non-nil fields and reports the number of affected rows
func (r *userRepository) Update(ctx context.Context, id int, upd UserUpdate) (int64, error) {
	var setClauses []string
	args := []interface{}{}
	argCount := 1

	if upd.Username != nil {
		setClauses = append(setClauses, fmt.Sprintf("username = $%d", argCount))
		args = append(args, *upd.Username)
		argCount++
	}
	if upd.Role != nil {
		setClauses = append(setClauses, fmt.Sprintf("role = $%d", argCount))
		args = append(args, *upd.Role)
		argCount++
	}
	if upd.PasswordHash != nil {
		setClauses = append(setClauses, fmt.Sprintf("password_hash = $%d", argCount))
		args = append(args, *upd.PasswordHash)
		argCount++
	}
	if len(setClauses) == 0 {
		return 0, fmt.Errorf("no fields to update")
	}

	sql := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argCount)
	args = append(args, id)

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update user: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Delete removes a user and reports the number of affected rows
func (r *userRepository) Delete(ctx context.Context, id int) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
