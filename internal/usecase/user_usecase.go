// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"handloom/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	Role            entity.Role
	FirstName       string
	LastName        string
	Phone           string
	Address         string
	Bio             string
	ProfilePicture  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// Logout ends the principal's session. A nil principal is a no-op.
	Logout(ctx context.Context, principal *entity.Principal) error
	// Authenticate resolves a session token into the caller.
	Authenticate(ctx context.Context, token string) (*entity.Principal, error)

	GetUser(ctx context.Context, principal *entity.Principal, userID uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context, principal *entity.Principal) ([]*entity.User, error)
	UpdateProfile(ctx context.Context, principal *entity.Principal, userID uuid.UUID, patch *entity.UserProfilePatch) (*entity.User, error)
}
