// Package repository defines the persistence interfaces for the application.
// Concrete adapters live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"github.com/2003aryan/crisp-ai/internal/domain/entity"
)

// UserRepository is the credential store: it persists user identity records
// and resolves them by username during authentication.
type UserRepository interface {
	// Create inserts a new user and fills in the generated ID and CreatedAt.
	// The username must be unique; a conflicting insert returns an error.
	Create(ctx context.Context, user *entity.User) error
	// GetByUsername retrieves a user by unique username.
	// Returns (nil, nil) if no such user exists.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
