package repository

import (
	"context"

	"handloom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for group persistence.
var (
	// ErrGroupNotFound is returned when a group is not found.
	ErrGroupNotFound = errors.New("group not found")
	// ErrMembershipExists is returned when adding a user who is already a member.
	ErrMembershipExists = errors.New("membership already exists")
	// ErrMembershipNotFound is returned when removing a user who is not a member.
	ErrMembershipNotFound = errors.New("membership not found")
)

// GroupRepository defines group and membership persistence.
type GroupRepository interface {
	// Create persists a group and its initial members.
	Create(ctx context.Context, group *entity.Group) error

	// FindByID retrieves a group with creator name and member IDs.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)

	// List returns all groups, newest first.
	List(ctx context.Context) ([]*entity.Group, error)

	// Update saves name and description.
	Update(ctx context.Context, group *entity.Group) error

	// Delete removes a group with its memberships and messages.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddMember inserts a membership.
	AddMember(ctx context.Context, groupID, userID uuid.UUID) error

	// RemoveMember deletes a membership.
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error

	// IsMember reports whether the user belongs to the group.
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)

	// ListMemberIDs returns the member IDs of a group.
	ListMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
}
