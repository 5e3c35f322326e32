package handler

import (
	"log/slog"
	"net/http"

	"handloom/internal/delivery/api/response"
	deliverycontext "handloom/internal/delivery/context"
	"handloom/internal/infra/realtime"
	"handloom/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
	Hub       *realtime.Hub
	Logger    *slog.Logger
}

// MessageHandler serves direct and group messaging and the live stream.
type MessageHandler struct {
	messageUC usecase.MessageUsecase
	hub       *realtime.Hub
	upgrader  websocket.Upgrader
	logger    *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		messageUC: params.MessageUC,
		hub:       params.Hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: params.Logger,
	}
}

// SendMessageRequest addresses a message to exactly one of a receiver or a group.
type SendMessageRequest struct {
	Receiver *uuid.UUID `json:"receiver"`
	Group    *uuid.UUID `json:"group"`
	Content  string     `json:"content" validate:"required,max=5000"`
}

func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req SendMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	message, err := h.messageUC.SendMessage(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.SendMessageInput{
		ReceiverID: req.Receiver,
		GroupID:    req.Group,
		Content:    req.Content,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message)
}

func (h *MessageHandler) ListMessages(c echo.Context) error {
	messages, err := h.messageUC.ListMessages(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}

func (h *MessageHandler) GetMessage(c echo.Context) error {
	messageID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	message, err := h.messageUC.GetMessage(c.Request().Context(), deliverycontext.GetPrincipal(c), messageID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, message)
}

// Conversations returns the caller's direct and group threads
func (h *MessageHandler) Conversations(c echo.Context) error {
	conversations, err := h.messageUC.Conversations(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, conversations)
}

func (h *MessageHandler) MarkRead(c echo.Context) error {
	messageID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.messageUC.MarkRead(c.Request().Context(), deliverycontext.GetPrincipal(c), messageID); err != nil {
		return response.HandleAppError(c, err)
	}

	return confirm(c, "Message marked as read")
}

func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	messageID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.messageUC.DeleteMessage(c.Request().Context(), deliverycontext.GetPrincipal(c), messageID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Stream upgrades to a websocket that receives messages addressed to the caller
func (h *MessageHandler) Stream(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader has already written the HTTP error
		h.logger.Warn("Websocket upgrade failed", slog.Any("error", err))

		return nil
	}

	h.hub.Serve(c.Request().Context(), conn, principal.UserID)

	return nil
}
