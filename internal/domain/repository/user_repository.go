// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"handloom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserConflict is returned when the username or email is already taken.
	ErrUserConflict = errors.New("username or email already taken")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by exact username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// List returns every user ordered by join date.
	List(ctx context.Context) ([]*entity.User, error)

	// Update saves the editable profile fields of a user.
	Update(ctx context.Context, user *entity.User) error
}
