package usecase

import (
	"context"

	"handloom/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput defines a purchase. A nil Quantity means one unit.
type PlaceOrderInput struct {
	ProductID       uuid.UUID
	Quantity        *int
	ShippingAddress string
}

// OrderUsecase defines order placement and the order ledger.
type OrderUsecase interface {
	// PlaceOrder reserves stock and records the order atomically.
	PlaceOrder(ctx context.Context, principal *entity.Principal, input *PlaceOrderInput) (*entity.Order, error)
	// ListOrders returns sales for sellers and purchases for everyone else.
	ListOrders(ctx context.Context, principal *entity.Principal) ([]*entity.Order, error)
	GetOrder(ctx context.Context, principal *entity.Principal, orderID uuid.UUID) (*entity.Order, error)
}

// OrderNotificationUsecase fans a placed order out to the seller's devices.
type OrderNotificationUsecase interface {
	NotifySeller(ctx context.Context, event *entity.OrderPlacedEvent) (*NotifyResult, error)
}

// NotifyResult summarizes one fan-out.
type NotifyResult struct {
	DeviceCount      int
	SuccessCount     int
	FailureCount     int
	DeactivatedCount int64
}
