package auth

import (
	"context"

	"github.com/google/uuid"
)

// RepositoryInterface defines the interface for auth repository operations
type RepositoryInterface interface {
	// CreateUser inserts a new user
	CreateUser(ctx context.Context, user *User) error

	// GetUserByEmail retrieves a user by email
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// GetUserByID retrieves a user by ID
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
}
