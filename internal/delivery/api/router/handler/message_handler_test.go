package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"handloom/internal/domain/entity"
	domainerrors "handloom/internal/domain/errors"
	"handloom/internal/infra/realtime"
	mockUsecase "handloom/internal/mocks/usecase"
	"handloom/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMessageTestServer(t *testing.T, principal *entity.Principal, hub *realtime.Hub) (*echo.Echo, *mockUsecase.MockMessageUsecase) {
	t.Helper()

	messageUC := mockUsecase.NewMockMessageUsecase(t)
	h := NewMessageHandler(MessageHandlerParams{
		MessageUC: messageUC,
		Hub:       hub,
		Logger:    newDiscardLogger(),
	})

	e := newTestEcho(principal)
	e.POST("/api/messages", h.SendMessage)
	e.GET("/api/messages/conversations", h.Conversations)
	e.GET("/api/messages/stream", h.Stream)
	e.POST("/api/messages/:id/read", h.MarkRead)
	e.DELETE("/api/messages/:id", h.DeleteMessage)

	return e, messageUC
}

func TestMessageHandler_SendMessage(t *testing.T) {
	t.Run("direct message", func(t *testing.T) {
		principal := newTestPrincipal(entity.RoleCustomer)
		receiverID := uuid.New()
		e, messageUC := newMessageTestServer(t, principal, nil)
		messageUC.EXPECT().
			SendMessage(mock.Anything, principal, mock.MatchedBy(func(in *usecase.SendMessageInput) bool {
				return in.ReceiverID != nil && *in.ReceiverID == receiverID && in.GroupID == nil && in.Content == "Is the shawl still available?"
			})).
			Return(&entity.Message{ID: uuid.New(), SenderID: principal.UserID, ReceiverID: &receiverID}, nil)

		rec := serve(e, http.MethodPost, "/api/messages",
			`{"receiver":"`+receiverID.String()+`","content":"Is the shawl still available?"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("empty content", func(t *testing.T) {
		e, _ := newMessageTestServer(t, newTestPrincipal(entity.RoleCustomer), nil)

		rec := serve(e, http.MethodPost, "/api/messages", `{"receiver":"`+uuid.NewString()+`","content":""}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "content: required", decodeEnvelope(t, rec).Error.Details)
	})

	t.Run("both receiver and group", func(t *testing.T) {
		principal := newTestPrincipal(entity.RoleCustomer)
		e, messageUC := newMessageTestServer(t, principal, nil)
		messageUC.EXPECT().SendMessage(mock.Anything, principal, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrInvalidRecipient))

		rec := serve(e, http.MethodPost, "/api/messages",
			`{"receiver":"`+uuid.NewString()+`","group":"`+uuid.NewString()+`","content":"hello"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.ErrInvalidRecipient.ErrorCode(), decodeEnvelope(t, rec).Error.Code)
	})
}

func TestMessageHandler_Conversations(t *testing.T) {
	principal := newTestPrincipal(entity.RoleWeaver)
	e, messageUC := newMessageTestServer(t, principal, nil)
	messageUC.EXPECT().Conversations(mock.Anything, principal).
		Return(&entity.Conversations{Direct: []*entity.Message{}, Group: []*entity.Message{}}, nil)

	rec := serve(e, http.MethodGet, "/api/messages/conversations", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"direct_messages":[],"group_messages":[]}`, string(decodeEnvelope(t, rec).Data))
}

func TestMessageHandler_MarkReadAndDelete(t *testing.T) {
	principal := newTestPrincipal(entity.RoleCustomer)
	messageID := uuid.New()
	e, messageUC := newMessageTestServer(t, principal, nil)
	messageUC.EXPECT().MarkRead(mock.Anything, principal, messageID).Return(nil)
	messageUC.EXPECT().DeleteMessage(mock.Anything, principal, messageID).Return(nil)

	rec := serve(e, http.MethodPost, "/api/messages/"+messageID.String()+"/read", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, http.MethodDelete, "/api/messages/"+messageID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMessageHandler_Stream(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		e, _ := newMessageTestServer(t, nil, realtime.NewHub(newDiscardLogger(), nil))

		rec := serve(e, http.MethodGet, "/api/messages/stream", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("delivers broadcasts to the caller", func(t *testing.T) {
		principal := newTestPrincipal(entity.RoleCustomer)
		hub := realtime.NewHub(newDiscardLogger(), nil)
		t.Cleanup(hub.Close)
		e, _ := newMessageTestServer(t, principal, hub)

		srv := httptest.NewServer(e)
		t.Cleanup(srv.Close)

		url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/messages/stream"
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		t.Cleanup(func() { conn.Close() })

		require.Eventually(t, func() bool {
			return hub.ConnectionCount(principal.UserID) == 1
		}, time.Second, 10*time.Millisecond)

		msg := &entity.Message{ID: uuid.New(), SenderID: uuid.New(), ReceiverID: &principal.UserID, Content: "Your order shipped"}
		require.NoError(t, hub.Broadcast(context.Background(), msg, []uuid.UUID{principal.UserID}))

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)

		var event struct {
			Type string         `json:"type"`
			Data entity.Message `json:"data"`
		}
		require.NoError(t, json.Unmarshal(payload, &event))
		assert.Equal(t, realtime.EventMessage, event.Type)
		assert.Equal(t, msg.ID, event.Data.ID)
		assert.Equal(t, "Your order shipped", event.Data.Content)
	})
}
