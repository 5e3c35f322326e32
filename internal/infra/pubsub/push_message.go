package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"handloom/internal/domain/constants"
	"handloom/internal/domain/entity"

	"github.com/pkg/errors"
)

// PushMessage mirrors the body Pub/Sub sends to push subscriptions.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// orderAttributes are attached to every order event for filtering and tracing.
func orderAttributes(event *entity.OrderPlacedEvent) map[string]string {
	attributes := map[string]string{
		constants.EventTypeAttribute: constants.EventTypeOrderPlaced,
		"order_id":                   event.OrderID.String(),
		"seller_id":                  event.SellerID.String(),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// NewOrderPushMessage wraps an order event in the push envelope.
func NewOrderPushMessage(event *entity.OrderPlacedEvent, subscription string, now time.Time) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = orderAttributes(event)
	msg.Message.MessageID = event.OrderID.String()
	msg.Message.PublishTime = now.UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeOrderPlaced extracts the order event from a push envelope.
func (m *PushMessage) DecodeOrderPlaced() (*entity.OrderPlacedEvent, error) {
	if eventType, ok := m.Message.Attributes[constants.EventTypeAttribute]; ok && eventType != constants.EventTypeOrderPlaced {
		return nil, errors.Errorf("unexpected event type: %s", eventType)
	}

	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event entity.OrderPlacedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal order event")
	}

	return &event, nil
}
