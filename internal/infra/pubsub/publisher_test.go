package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"handloom/config"
	"handloom/internal/domain/constants"
	"handloom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *entity.OrderPlacedEvent {
	return &entity.OrderPlacedEvent{
		RequestID:   "req-1",
		OrderID:     uuid.New(),
		ProductID:   uuid.New(),
		ProductName: "Ikat Shawl",
		SellerID:    uuid.New(),
		CustomerID:  uuid.New(),
		Quantity:    2,
		TotalPrice:  decimal.RequireFromString("90.00"),
		PlacedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishOrderPlaced(t *testing.T) {
	event := newTestEvent()

	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishOrderPlaced(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, constants.EventTypeOrderPlaced, received.Message.Attributes[constants.EventTypeAttribute])
	assert.Equal(t, event.SellerID.String(), received.Message.Attributes["seller_id"])

	decoded, err := received.DecodeOrderPlaced()
	require.NoError(t, err)
	assert.Equal(t, event.OrderID, decoded.OrderID)
	assert.True(t, event.TotalPrice.Equal(decoded.TotalPrice))
	assert.Equal(t, 2, decoded.Quantity)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishOrderPlaced(context.Background(), newTestEvent())

	assert.ErrorContains(t, err, "503")
}

func TestPushMessage_DecodeOrderPlaced_RejectsOtherEvents(t *testing.T) {
	msg, err := NewOrderPushMessage(newTestEvent(), "sub", time.Now())
	require.NoError(t, err)

	msg.Message.Attributes[constants.EventTypeAttribute] = "user.created"
	_, err = msg.DecodeOrderPlaced()
	assert.ErrorContains(t, err, "unexpected event type")

	msg.Message.Attributes[constants.EventTypeAttribute] = constants.EventTypeOrderPlaced
	msg.Message.Data = "%%%"
	_, err = msg.DecodeOrderPlaced()
	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	t.Run("no provider falls back to noop", func(t *testing.T) {
		publisher, err := NewEventPublisher(PublisherParams{
			Ctx:    context.Background(),
			Config: &config.Config{},
			Logger: newDiscardLogger(),
		})

		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishOrderPlaced(context.Background(), newTestEvent()))
	})

	t.Run("local provider requires endpoint", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
		_, err := NewEventPublisher(PublisherParams{
			Ctx:    context.Background(),
			Config: cfg,
			Logger: newDiscardLogger(),
		})

		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}}
		_, err := NewEventPublisher(PublisherParams{
			Ctx:    context.Background(),
			Config: cfg,
			Logger: newDiscardLogger(),
		})

		assert.ErrorContains(t, err, "unknown pubsub provider")
	})
}
