package docsystem

import (
	"context"

	"dochub/internal/domain/models/docsystem"
)

// UserRepository defines data access operations for users
type UserRepository interface {
	// Create inserts a user and fills in ID and created_at
	Create(ctx context.Context, user *docsystem.User) error

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*docsystem.User, error)

	// Count returns the number of registered users
	Count(ctx context.Context) (int64, error)
}
