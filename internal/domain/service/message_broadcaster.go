package service

import (
	"context"

	"handloom/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageBroadcaster pushes newly stored messages to connected recipients.
type MessageBroadcaster interface {
	// Broadcast delivers the message to every live connection of the given users.
	// Delivery is best effort: offline users read the message from the list endpoints.
	Broadcast(ctx context.Context, message *entity.Message, recipients []uuid.UUID) error
}
