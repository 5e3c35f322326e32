package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "handloom/internal/delivery/context"
	"handloom/internal/domain/entity"
	domainerrors "handloom/internal/domain/errors"
	"handloom/internal/domain/repository"
	"handloom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type groupService struct {
	txManager repository.TransactionManager
	groupRepo repository.GroupRepository
	logger    *slog.Logger
	now       func() time.Time
}

// GroupServiceParams holds dependencies for GroupService, injected by Fx.
type GroupServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	GroupRepo repository.GroupRepository
	Logger    *slog.Logger
}

// NewGroupService creates a new group directory service instance
func NewGroupService(params GroupServiceParams) usecase.GroupUsecase {
	return &groupService{
		txManager: params.TxManager,
		groupRepo: params.GroupRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *groupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateGroup stores the group with the creator as its first member.
func (srv *groupService) CreateGroup(ctx context.Context, principal *entity.Principal, input *usecase.CreateGroupInput) (*entity.Group, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if isBlank(input.Name) {
		return nil, validationError("name is required")
	}

	now := srv.now()
	group := &entity.Group{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		CreatorID:   principal.UserID,
		CreatorName: principal.Username,
		MemberIDs:   []uuid.UUID{principal.UserID},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewGroupRepository().Create(ctx, group)
	})
	if err != nil {
		return nil, databaseError(err, "create group")
	}

	srv.log(ctx).Info("Group created", slog.Any("group_id", group.ID), slog.Any("creator_id", group.CreatorID))

	return group, nil
}

func (srv *groupService) ListGroups(ctx context.Context, principal *entity.Principal) ([]*entity.Group, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	groups, err := srv.groupRepo.List(ctx)
	if err != nil {
		return nil, databaseError(err, "list groups")
	}

	return groups, nil
}

func (srv *groupService) GetGroup(ctx context.Context, principal *entity.Principal, groupID uuid.UUID) (*entity.Group, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	return srv.findGroup(ctx, groupID)
}

func (srv *groupService) findGroup(ctx context.Context, groupID uuid.UUID) (*entity.Group, error) {
	group, err := srv.groupRepo.FindByID(ctx, groupID)
	if errors.Is(err, repository.ErrGroupNotFound) {
		return nil, errors.WithStack(domainerrors.ErrGroupNotFound)
	}
	if err != nil {
		return nil, databaseError(err, "find group")
	}

	return group, nil
}

// managedGroup loads a group the caller may edit or delete.
func (srv *groupService) managedGroup(ctx context.Context, principal *entity.Principal, groupID uuid.UUID) (*entity.Group, error) {
	group, err := srv.findGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.IsCreator(principal.UserID) && !principal.IsAdmin() {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return group, nil
}

func (srv *groupService) UpdateGroup(ctx context.Context, principal *entity.Principal, groupID uuid.UUID, patch *entity.GroupPatch) (*entity.Group, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if patch != nil && patch.Name != nil && isBlank(*patch.Name) {
		return nil, validationError("name cannot be empty")
	}

	group, err := srv.managedGroup(ctx, principal, groupID)
	if err != nil {
		return nil, err
	}

	patch.Apply(group)
	group.UpdatedAt = srv.now()

	if err := srv.groupRepo.Update(ctx, group); err != nil {
		return nil, databaseError(err, "update group")
	}

	return group, nil
}

func (srv *groupService) DeleteGroup(ctx context.Context, principal *entity.Principal, groupID uuid.UUID) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	group, err := srv.managedGroup(ctx, principal, groupID)
	if err != nil {
		return err
	}

	if err := srv.groupRepo.Delete(ctx, group.ID); err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return errors.WithStack(domainerrors.ErrGroupNotFound)
		}

		return databaseError(err, "delete group")
	}

	srv.log(ctx).Info("Group deleted", slog.Any("group_id", group.ID))

	return nil
}

// JoinGroup adds the caller to the group.
func (srv *groupService) JoinGroup(ctx context.Context, principal *entity.Principal, groupID uuid.UUID) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	group, err := srv.findGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if group.HasMember(principal.UserID) {
		return errors.WithStack(domainerrors.ErrAlreadyMember)
	}

	if err := srv.groupRepo.AddMember(ctx, group.ID, principal.UserID); err != nil {
		if errors.Is(err, repository.ErrMembershipExists) {
			return errors.WithStack(domainerrors.ErrAlreadyMember)
		}

		return databaseError(err, "add group member")
	}

	srv.log(ctx).Info("User joined group", slog.Any("group_id", group.ID), slog.Any("user_id", principal.UserID))

	return nil
}

// LeaveGroup removes the caller from the group. The creator cannot leave.
func (srv *groupService) LeaveGroup(ctx context.Context, principal *entity.Principal, groupID uuid.UUID) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	group, err := srv.findGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if !group.HasMember(principal.UserID) {
		return errors.WithStack(domainerrors.ErrNotMember)
	}
	if group.IsCreator(principal.UserID) {
		return errors.WithStack(domainerrors.ErrCreatorCannotLeave)
	}

	if err := srv.groupRepo.RemoveMember(ctx, group.ID, principal.UserID); err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return errors.WithStack(domainerrors.ErrNotMember)
		}

		return databaseError(err, "remove group member")
	}

	srv.log(ctx).Info("User left group", slog.Any("group_id", group.ID), slog.Any("user_id", principal.UserID))

	return nil
}
