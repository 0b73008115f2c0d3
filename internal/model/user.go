package model

import (
	"strings"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account in the system
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the verified (subject id, role) pair reconstructed from a token.
// It is never persisted; it lives only for the duration of a request.
type Identity struct {
	UserID int
	Role   string
}

// NormalizeRole lowercases and maps legacy role names onto the current set.
// Older records used "general" for ordinary users.
func NormalizeRole(role string) (string, bool) {
	r := strings.ToLower(strings.TrimSpace(role))
	if r == "general" {
		r = RoleUser
	}
	if r != RoleUser && r != RoleAdmin {
		return "", false
	}
	return r, true
}

// CreateUserRequest is used by admins to create accounts directly
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// UpdateUserRequest carries a partial user update; nil fields are untouched
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Role     *string `json:"role,omitempty"`
	Password *string `json:"password,omitempty"`
}
