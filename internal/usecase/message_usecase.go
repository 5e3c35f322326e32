package usecase

import (
	"context"

	"handloom/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessageInput addresses a message to exactly one of a receiver or a group.
type SendMessageInput struct {
	ReceiverID *uuid.UUID
	GroupID    *uuid.UUID
	Content    string
}

// MessageUsecase defines messaging operations.
type MessageUsecase interface {
	SendMessage(ctx context.Context, principal *entity.Principal, input *SendMessageInput) (*entity.Message, error)
	// ListMessages returns every message visible to the caller, newest first.
	ListMessages(ctx context.Context, principal *entity.Principal) ([]*entity.Message, error)
	GetMessage(ctx context.Context, principal *entity.Principal, messageID uuid.UUID) (*entity.Message, error)
	Conversations(ctx context.Context, principal *entity.Principal) (*entity.Conversations, error)
	MarkRead(ctx context.Context, principal *entity.Principal, messageID uuid.UUID) error
	DeleteMessage(ctx context.Context, principal *entity.Principal, messageID uuid.UUID) error
}
