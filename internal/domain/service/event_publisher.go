package service

import (
	"context"

	"handloom/internal/domain/entity"
)

// EventPublisher defines the interface for publishing domain events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced announces a committed order for asynchronous seller notification
	PublishOrderPlaced(ctx context.Context, event *entity.OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
