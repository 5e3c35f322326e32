package impl

import (
	"context"
	"testing"
	"time"

	"handloom/internal/domain/entity"
	domainerrors "handloom/internal/domain/errors"
	"handloom/internal/domain/repository"
	mockRepo "handloom/internal/mocks/repository"
	"handloom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type groupServiceFixtures struct {
	service     *groupService
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	txGroups    *mockRepo.MockGroupRepository
	groupRepo   *mockRepo.MockGroupRepository
	now         time.Time
}

func createTestGroupService(t *testing.T) groupServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	txGroups := mockRepo.NewMockGroupRepository(t)
	groupRepo := mockRepo.NewMockGroupRepository(t)
	now := time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC)

	svc := NewGroupService(GroupServiceParams{
		TxManager: txManager,
		GroupRepo: groupRepo,
		Logger:    newDiscardLogger(),
	}).(*groupService)
	svc.now = fixedClock(now)

	return groupServiceFixtures{
		service:     svc,
		txManager:   txManager,
		repoFactory: repoFactory,
		txGroups:    txGroups,
		groupRepo:   groupRepo,
		now:         now,
	}
}

func newGroup(creatorID uuid.UUID, members ...uuid.UUID) *entity.Group {
	return &entity.Group{
		ID:        uuid.New(),
		Name:      "Indigo dyers",
		CreatorID: creatorID,
		MemberIDs: append([]uuid.UUID{creatorID}, members...),
	}
}

func TestGroupService_CreateGroup(t *testing.T) {
	t.Run("creator becomes first member", func(t *testing.T) {
		fx := createTestGroupService(t)
		ctx := context.Background()
		creator := newPrincipal(entity.RoleWeaver)

		fx.txManager.EXPECT().
			Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				return fn(fx.repoFactory)
			})
		fx.repoFactory.EXPECT().NewGroupRepository().Return(fx.txGroups)
		fx.txGroups.EXPECT().
			Create(ctx, mock.MatchedBy(func(g *entity.Group) bool {
				return g.CreatorID == creator.UserID && g.HasMember(creator.UserID) && g.MemberCount() == 1
			})).
			Return(nil)

		group, err := fx.service.CreateGroup(ctx, creator, &usecase.CreateGroupInput{Name: " Indigo dyers ", Description: "Natural dye techniques"})
		require.NoError(t, err)
		assert.Equal(t, "Indigo dyers", group.Name)
		assert.Equal(t, creator.Username, group.CreatorName)
		assert.Equal(t, fx.now, group.CreatedAt)
	})

	t.Run("name required", func(t *testing.T) {
		fx := createTestGroupService(t)

		_, err := fx.service.CreateGroup(context.Background(), newPrincipal(entity.RoleCustomer), &usecase.CreateGroupInput{Name: "  "})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("anonymous", func(t *testing.T) {
		fx := createTestGroupService(t)

		_, err := fx.service.CreateGroup(context.Background(), nil, &usecase.CreateGroupInput{Name: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}

func TestGroupService_JoinGroup(t *testing.T) {
	t.Run("new member", func(t *testing.T) {
		fx := createTestGroupService(t)
		ctx := context.Background()
		joiner := newPrincipal(entity.RoleCustomer)
		group := newGroup(uuid.New())

		fx.groupRepo.EXPECT().FindByID(ctx, group.ID).Return(group, nil)
		fx.groupRepo.EXPECT().AddMember(ctx, group.ID, joiner.UserID).Return(nil)

		assert.NoError(t, fx.service.JoinGroup(ctx, joiner, group.ID))
	})

	t.Run("already a member", func(t *testing.T) {
		fx := createTestGroupService(t)
		ctx := context.Background()
		member := newPrincipal(entity.RoleCustomer)
		group := newGroup(uuid.New(), member.UserID)

		fx.groupRepo.EXPECT().FindByID(ctx, group.ID).Return(group, nil)

		err := fx.service.JoinGroup(ctx, member, group.ID)
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyMember)
		fx.groupRepo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("concurrent join loses the insert", func(t *testing.T) {
		fx := createTestGroupService(t)
		ctx := context.Background()
		joiner := newPrincipal(entity.RoleCustomer)
		group := newGroup(uuid.New())

		fx.groupRepo.EXPECT().FindByID(ctx, group.ID).Return(group, nil)
		fx.groupRepo.EXPECT().AddMember(ctx, group.ID, joiner.UserID).Return(repository.ErrMembershipExists)

		assert.ErrorIs(t, fx.service.JoinGroup(ctx, joiner, group.ID), domainerrors.ErrAlreadyMember)
	})

	t.Run("unknown group", func(t *testing.T) {
		fx := createTestGroupService(t)
		ctx := context.Background()
		groupID := uuid.New()

		fx.groupRepo.EXPECT().FindByID(ctx, groupID).Return(nil, repository.ErrGroupNotFound)

		assert.ErrorIs(t, fx.service.JoinGroup(ctx, newPrincipal(entity.RoleCustomer), groupID), domainerrors.ErrGroupNotFound)
	})
}

func TestGroupService_LeaveGroup(t *testing.T) {
	t.Run("member leaves", func(t *testing.T) {
		fx := createTestGroupService(t)
		ctx := context.Background()
		member := newPrincipal(entity.RoleDesigner)
		group := newGroup(uuid.New(), member.UserID)

		fx.groupRepo.EXPECT().FindByID(ctx, group.ID).Return(group, nil)
		fx.groupRepo.EXPECT().RemoveMember(ctx, group.ID, member.UserID).Return(nil)

		assert.NoError(t, fx.service.LeaveGroup(ctx, member, group.ID))
	})

	t.Run("non member", func(t *testing.T) {
		fx := createTestGroupService(t)
		ctx := context.Background()
		group := newGroup(uuid.New())

		fx.groupRepo.EXPECT().FindByID(ctx, group.ID).Return(group, nil)

		assert.ErrorIs(t, fx.service.LeaveGroup(ctx, newPrincipal(entity.RoleCustomer), group.ID), domainerrors.ErrNotMember)
	})

	t.Run("creator stays", func(t *testing.T) {
		fx := createTestGroupService(t)
		ctx := context.Background()
		creator := newPrincipal(entity.RoleWeaver)
		group := newGroup(creator.UserID)

		fx.groupRepo.EXPECT().FindByID(ctx, group.ID).Return(group, nil)

		assert.ErrorIs(t, fx.service.LeaveGroup(ctx, creator, group.ID), domainerrors.ErrCreatorCannotLeave)
		fx.groupRepo.AssertNotCalled(t, "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGroupService_UpdateGroup(t *testing.T) {
	t.Run("creator renames", func(t *testing.T) {
		fx := createTestGroupService(t)
		ctx := context.Background()
		creator := newPrincipal(entity.RoleWeaver)
		group := newGroup(creator.UserID)

		fx.groupRepo.EXPECT().FindByID(ctx, group.ID).Return(group, nil)
		fx.groupRepo.EXPECT().Update(ctx, group).Return(nil)

		updated, err := fx.service.UpdateGroup(ctx, creator, group.ID, &entity.GroupPatch{Name: stringPtr("Madder dyers")})
		require.NoError(t, err)
		assert.Equal(t, "Madder dyers", updated.Name)
		assert.Equal(t, fx.now, updated.UpdatedAt)
	})

	t.Run("member cannot rename", func(t *testing.T) {
		fx := createTestGroupService(t)
		ctx := context.Background()
		member := newPrincipal(entity.RoleCustomer)
		group := newGroup(uuid.New(), member.UserID)

		fx.groupRepo.EXPECT().FindByID(ctx, group.ID).Return(group, nil)

		_, err := fx.service.UpdateGroup(ctx, member, group.ID, &entity.GroupPatch{Name: stringPtr("mine")})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestGroupService_DeleteGroup_Admin(t *testing.T) {
	fx := createTestGroupService(t)
	ctx := context.Background()
	group := newGroup(uuid.New())

	fx.groupRepo.EXPECT().FindByID(ctx, group.ID).Return(group, nil)
	fx.groupRepo.EXPECT().Delete(ctx, group.ID).Return(nil)

	assert.NoError(t, fx.service.DeleteGroup(ctx, newPrincipal(entity.RoleAdmin), group.ID))
}
