package postgres

import (
	"context"

	"handloom/internal/domain/entity"
	domainerrors "handloom/internal/domain/errors"
	"handloom/internal/domain/repository"
	"handloom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const messageDetailColumns = "messages.*, senders.username AS sender_name, " +
	"receivers.username AS receiver_name, groups.name AS group_name"

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (repo *messageRepository) detailed(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Select(messageDetailColumns).
		Joins("JOIN users AS senders ON senders.id = messages.sender_id").
		Joins("LEFT JOIN users AS receivers ON receivers.id = messages.receiver_id").
		Joins("LEFT JOIN groups ON groups.id = messages.group_id")
}

// memberGroupIDs selects the IDs of the groups userID belongs to.
func (repo *messageRepository) memberGroupIDs(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.GroupMemberModel{}).
		Select("group_id").
		Where("user_id = ?", userID)
}

func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRecipient
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	return nil
}

func (repo *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	var row model.MessageRow

	result := repo.detailed(ctx).Where("messages.id = ?", id).Limit(1).Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find message by ID")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrMessageNotFound
	}

	return toMessageDomain(&row), nil
}

func (repo *messageRepository) ListVisibleTo(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error) {
	query := repo.detailed(ctx).Where(
		"messages.sender_id = ? OR messages.receiver_id = ? OR messages.group_id IN (?)",
		userID, userID, repo.memberGroupIDs(ctx, userID),
	)

	return repo.list(query)
}

func (repo *messageRepository) ListDirect(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error) {
	query := repo.detailed(ctx).
		Where("messages.group_id IS NULL").
		Where("messages.sender_id = ? OR messages.receiver_id = ?", userID, userID)

	return repo.list(query)
}

func (repo *messageRepository) ListGroup(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error) {
	query := repo.detailed(ctx).Where("messages.group_id IN (?)", repo.memberGroupIDs(ctx, userID))

	return repo.list(query)
}

func (repo *messageRepository) list(query *gorm.DB) ([]*entity.Message, error) {
	var rows []*model.MessageRow

	if err := query.Order("messages.timestamp DESC").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, toMessageDomain(row))
	}

	return messages, nil
}

func (repo *messageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("id = ?", id).
		Update("is_read", true)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark message read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

func (repo *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MessageModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete message")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMessageDomain(data *model.MessageRow) *entity.Message {
	if data == nil {
		return nil
	}

	message := &entity.Message{
		ID:         data.ID,
		SenderID:   data.SenderID,
		SenderName: data.SenderName,
		ReceiverID: data.ReceiverID,
		GroupID:    data.GroupID,
		Content:    data.Content,
		Timestamp:  data.Timestamp,
		IsRead:     data.IsRead,
	}
	if data.ReceiverName != nil {
		message.ReceiverName = *data.ReceiverName
	}
	if data.GroupName != nil {
		message.GroupName = *data.GroupName
	}

	return message
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:         data.ID,
		SenderID:   data.SenderID,
		ReceiverID: data.ReceiverID,
		GroupID:    data.GroupID,
		Content:    data.Content,
		Timestamp:  data.Timestamp,
		IsRead:     data.IsRead,
	}
}
