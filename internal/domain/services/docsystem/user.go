package docsystem

import (
	"context"

	"dochub/internal/domain/models/docsystem"
)

// UserService handles registration
type UserService interface {
	// Register creates a user, or returns the existing user for a known email.
	// created reports whether a new row was inserted.
	Register(ctx context.Context, req *RegisterRequest) (user *docsystem.User, created bool, err error)
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
