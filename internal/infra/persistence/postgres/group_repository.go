package postgres

import (
	"context"
	"time"

	"handloom/internal/domain/entity"
	domainerrors "handloom/internal/domain/errors"
	"handloom/internal/domain/repository"
	"handloom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// groupRepository implements the repository.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

func (repo *groupRepository) withCreator(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.GroupModel{}).
		Select("groups.*, users.username AS creator_name").
		Joins("JOIN users ON users.id = groups.creator_id")
}

// Create inserts the group row and one membership per MemberIDs entry.
// Callers wanting both in one unit run it inside TransactionManager.Execute.
func (repo *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	groupM := fromGroupDomain(group)

	if err := repo.db.WithContext(ctx).Create(groupM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create group")
	}

	if len(group.MemberIDs) > 0 {
		members := make([]*model.GroupMemberModel, 0, len(group.MemberIDs))
		for _, userID := range group.MemberIDs {
			members = append(members, &model.GroupMemberModel{
				GroupID:  groupM.ID,
				UserID:   userID,
				JoinedAt: groupM.CreatedAt,
			})
		}

		if err := repo.db.WithContext(ctx).Create(&members).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to add group members")
		}
	}

	group.CreatedAt = groupM.CreatedAt
	group.UpdatedAt = groupM.UpdatedAt

	return nil
}

func (repo *groupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var row model.GroupRow

	result := repo.withCreator(ctx).Where("groups.id = ?", id).Limit(1).Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find group by ID")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrGroupNotFound
	}

	memberIDs, err := repo.ListMemberIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	return toGroupDomain(&row, memberIDs), nil
}

func (repo *groupRepository) List(ctx context.Context) ([]*entity.Group, error) {
	var rows []*model.GroupRow

	if err := repo.withCreator(ctx).Order("groups.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list groups")
	}

	if len(rows) == 0 {
		return []*entity.Group{}, nil
	}

	groupIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		groupIDs = append(groupIDs, row.ID)
	}

	var memberships []*model.GroupMemberModel
	if err := repo.db.WithContext(ctx).
		Where("group_id IN ?", groupIDs).
		Order("joined_at ASC").
		Find(&memberships).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list group members")
	}

	membersByGroup := make(map[uuid.UUID][]uuid.UUID, len(rows))
	for _, membership := range memberships {
		membersByGroup[membership.GroupID] = append(membersByGroup[membership.GroupID], membership.UserID)
	}

	groups := make([]*entity.Group, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, toGroupDomain(row, membersByGroup[row.ID]))
	}

	return groups, nil
}

func (repo *groupRepository) Update(ctx context.Context, group *entity.Group) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GroupModel{}).
		Where("id = ?", group.ID).
		Updates(map[string]any{
			"name":        group.Name,
			"description": group.Description,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update group")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

// Delete removes the group; memberships and group messages go with it through ON DELETE CASCADE.
func (repo *groupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GroupModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete group")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

func (repo *groupRepository) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	membership := &model.GroupMemberModel{
		GroupID:  groupID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}

	if err := repo.db.WithContext(ctx).Create(membership).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrMembershipExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGroupNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add group member")
	}

	return nil
}

func (repo *groupRepository) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&model.GroupMemberModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove group member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMembershipNotFound
	}

	return nil
}

func (repo *groupRepository) IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.GroupMemberModel{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check group membership")
	}

	return count > 0, nil
}

func (repo *groupRepository) ListMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	var memberIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.GroupMemberModel{}).
		Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Pluck("user_id", &memberIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list group member IDs")
	}

	return memberIDs, nil
}

// --- Mapper Functions ---

func toGroupDomain(data *model.GroupRow, memberIDs []uuid.UUID) *entity.Group {
	if data == nil {
		return nil
	}
	if memberIDs == nil {
		memberIDs = []uuid.UUID{}
	}

	return &entity.Group{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatorID:   data.CreatorID,
		CreatorName: data.CreatorName,
		MemberIDs:   memberIDs,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromGroupDomain(data *entity.Group) *model.GroupModel {
	if data == nil {
		return nil
	}

	return &model.GroupModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatorID:   data.CreatorID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
