package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "handloom/internal/delivery/context"
	"handloom/internal/domain/entity"
	domainerrors "handloom/internal/domain/errors"
	"handloom/internal/domain/repository"
	"handloom/internal/domain/service"
	"handloom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	groupRepo   repository.GroupRepository
	broadcaster service.MessageBroadcaster
	metrics     service.MetricsRecorder
	logger      *slog.Logger
	now         func() time.Time
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	UserRepo    repository.UserRepository
	GroupRepo   repository.GroupRepository
	Broadcaster service.MessageBroadcaster
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// NewMessageService creates a new messaging service instance
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo: params.MessageRepo,
		userRepo:    params.UserRepo,
		groupRepo:   params.GroupRepo,
		broadcaster: params.Broadcaster,
		metrics:     params.Metrics,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage stores a direct or group message from the caller and pushes it to
// connected recipients.
func (srv *messageService) SendMessage(ctx context.Context, principal *entity.Principal, input *usecase.SendMessageInput) (*entity.Message, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if isBlank(input.Content) {
		return nil, validationError("content is required")
	}

	message := &entity.Message{
		ID:         uuid.New(),
		SenderID:   principal.UserID,
		SenderName: principal.Username,
		ReceiverID: input.ReceiverID,
		GroupID:    input.GroupID,
		Content:    strings.TrimSpace(input.Content),
		Timestamp:  srv.now(),
	}
	if !message.HasValidRecipient() {
		return nil, errors.WithStack(domainerrors.ErrInvalidRecipient)
	}

	recipients, err := srv.resolveRecipients(ctx, principal, message)
	if err != nil {
		return nil, err
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		return nil, databaseError(err, "create message")
	}

	srv.metrics.MessageSent(string(message.Kind()))
	srv.log(ctx).Info("Message sent",
		slog.Any("message_id", message.ID),
		slog.String("kind", string(message.Kind())),
	)

	if err := srv.broadcaster.Broadcast(ctx, message, recipients); err != nil {
		srv.log(ctx).Warn("Failed to broadcast message", slog.Any("message_id", message.ID), slog.Any("error", err))
	}

	return message, nil
}

// resolveRecipients validates the addressee and fills in its display name.
func (srv *messageService) resolveRecipients(ctx context.Context, principal *entity.Principal, message *entity.Message) ([]uuid.UUID, error) {
	if message.Kind() == entity.MessageKindDirect {
		receiver, err := srv.userRepo.FindByID(ctx, *message.ReceiverID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}
		if err != nil {
			return nil, databaseError(err, "find receiver")
		}
		message.ReceiverName = receiver.Username

		return []uuid.UUID{principal.UserID, receiver.ID}, nil
	}

	group, err := srv.groupRepo.FindByID(ctx, *message.GroupID)
	if errors.Is(err, repository.ErrGroupNotFound) {
		return nil, errors.WithStack(domainerrors.ErrGroupNotFound)
	}
	if err != nil {
		return nil, databaseError(err, "find group")
	}
	if !group.HasMember(principal.UserID) {
		return nil, errors.WithStack(domainerrors.ErrNotGroupMember)
	}
	message.GroupName = group.Name

	return group.MemberIDs, nil
}

func (srv *messageService) ListMessages(ctx context.Context, principal *entity.Principal) ([]*entity.Message, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	messages, err := srv.messageRepo.ListVisibleTo(ctx, principal.UserID)
	if err != nil {
		return nil, databaseError(err, "list messages")
	}

	return messages, nil
}

func (srv *messageService) findMessage(ctx context.Context, messageID uuid.UUID) (*entity.Message, error) {
	message, err := srv.messageRepo.FindByID(ctx, messageID)
	if errors.Is(err, repository.ErrMessageNotFound) {
		return nil, errors.WithStack(domainerrors.ErrMessageNotFound)
	}
	if err != nil {
		return nil, databaseError(err, "find message")
	}

	return message, nil
}

// visibleMessage loads a message the caller sent, received, or can read as a group member.
func (srv *messageService) visibleMessage(ctx context.Context, principal *entity.Principal, messageID uuid.UUID) (*entity.Message, error) {
	message, err := srv.findMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if message.SenderID == principal.UserID || message.IsReceiver(principal.UserID) {
		return message, nil
	}

	if message.Kind() == entity.MessageKindGroup {
		isMember, err := srv.groupRepo.IsMember(ctx, *message.GroupID, principal.UserID)
		if err != nil {
			return nil, databaseError(err, "check group membership")
		}
		if isMember {
			return message, nil
		}
	}

	return nil, errors.WithStack(domainerrors.ErrMessageNotFound)
}

func (srv *messageService) GetMessage(ctx context.Context, principal *entity.Principal, messageID uuid.UUID) (*entity.Message, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	return srv.visibleMessage(ctx, principal, messageID)
}

// Conversations splits the caller's messages into direct and group threads.
func (srv *messageService) Conversations(ctx context.Context, principal *entity.Principal) (*entity.Conversations, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	direct, err := srv.messageRepo.ListDirect(ctx, principal.UserID)
	if err != nil {
		return nil, databaseError(err, "list direct messages")
	}

	group, err := srv.messageRepo.ListGroup(ctx, principal.UserID)
	if err != nil {
		return nil, databaseError(err, "list group messages")
	}

	if direct == nil {
		direct = []*entity.Message{}
	}
	if group == nil {
		group = []*entity.Message{}
	}

	return &entity.Conversations{Direct: direct, Group: group}, nil
}

// MarkRead flags a message as read. Only a recipient may do so: the receiver of a
// direct message, or any group member other than the sender.
func (srv *messageService) MarkRead(ctx context.Context, principal *entity.Principal, messageID uuid.UUID) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	message, err := srv.visibleMessage(ctx, principal, messageID)
	if err != nil {
		return err
	}
	if message.SenderID == principal.UserID {
		return errors.WithStack(domainerrors.ErrForbidden)
	}
	if message.IsRead {
		return nil
	}

	if err := srv.messageRepo.MarkRead(ctx, message.ID); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return errors.WithStack(domainerrors.ErrMessageNotFound)
		}

		return databaseError(err, "mark message read")
	}

	return nil
}

// DeleteMessage removes a message. Only its sender or an admin may do so.
func (srv *messageService) DeleteMessage(ctx context.Context, principal *entity.Principal, messageID uuid.UUID) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	var (
		message *entity.Message
		err     error
	)
	if principal.IsAdmin() {
		message, err = srv.findMessage(ctx, messageID)
	} else {
		message, err = srv.visibleMessage(ctx, principal, messageID)
	}
	if err != nil {
		return err
	}
	if message.SenderID != principal.UserID && !principal.IsAdmin() {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	if err := srv.messageRepo.Delete(ctx, message.ID); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return errors.WithStack(domainerrors.ErrMessageNotFound)
		}

		return databaseError(err, "delete message")
	}

	return nil
}
