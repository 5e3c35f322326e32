package repository

import (
	"context"

	"handloom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMessageNotFound is returned when a message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines message persistence. All lists are newest first.
type MessageRepository interface {
	// Create persists a new message.
	Create(ctx context.Context, message *entity.Message) error

	// FindByID retrieves a message with sender, receiver and group names.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// ListVisibleTo returns messages the user sent, received, or can read through
	// group membership, each message once.
	ListVisibleTo(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error)

	// ListDirect returns direct messages the user sent or received.
	ListDirect(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error)

	// ListGroup returns messages of every group the user belongs to.
	ListGroup(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error)

	// MarkRead flags a message as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// Delete removes a message.
	Delete(ctx context.Context, id uuid.UUID) error
}
