package usecase

import (
	"context"

	"handloom/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGroupInput defines a new group. The creator is always the caller.
type CreateGroupInput struct {
	Name        string
	Description string
}

// GroupUsecase defines group directory operations.
type GroupUsecase interface {
	CreateGroup(ctx context.Context, principal *entity.Principal, input *CreateGroupInput) (*entity.Group, error)
	ListGroups(ctx context.Context, principal *entity.Principal) ([]*entity.Group, error)
	GetGroup(ctx context.Context, principal *entity.Principal, groupID uuid.UUID) (*entity.Group, error)
	UpdateGroup(ctx context.Context, principal *entity.Principal, groupID uuid.UUID, patch *entity.GroupPatch) (*entity.Group, error)
	DeleteGroup(ctx context.Context, principal *entity.Principal, groupID uuid.UUID) error
	JoinGroup(ctx context.Context, principal *entity.Principal, groupID uuid.UUID) error
	LeaveGroup(ctx context.Context, principal *entity.Principal, groupID uuid.UUID) error
}
