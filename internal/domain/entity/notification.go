package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderPlacedEvent is published after an order commits.
type OrderPlacedEvent struct {
	RequestID   string          `json:"request_id,omitempty"`
	OrderID     uuid.UUID       `json:"order_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	SellerID    uuid.UUID       `json:"seller_id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	PlacedAt    time.Time       `json:"placed_at"`
}

// NewOrderPlacedEvent describes a committed order.
func NewOrderPlacedEvent(order *Order, requestID string) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		RequestID:   requestID,
		OrderID:     order.ID,
		ProductID:   order.ProductID,
		ProductName: order.ProductName,
		SellerID:    order.SellerID,
		CustomerID:  order.CustomerID,
		Quantity:    order.Quantity,
		TotalPrice:  order.TotalPrice,
		PlacedAt:    order.OrderDate,
	}
}

// PushNotification is the payload sent to a seller's devices.
type PushNotification struct {
	Title string
	Body  string
	Data  map[string]string
}

// NewOrderNotification renders the seller-facing alert for an order.
func NewOrderNotification(event *OrderPlacedEvent) *PushNotification {
	return &PushNotification{
		Title: "New order received",
		Body:  fmt.Sprintf("%d × %s (%s)", event.Quantity, event.ProductName, event.TotalPrice.StringFixed(2)),
		Data: map[string]string{
			"type":       "order_placed",
			"order_id":   event.OrderID.String(),
			"product_id": event.ProductID.String(),
		},
	}
}
