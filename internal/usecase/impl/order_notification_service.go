package impl

import (
	"context"
	"log/slog"

	deliverycontext "handloom/internal/delivery/context"
	"handloom/internal/domain/entity"
	"handloom/internal/domain/repository"
	"handloom/internal/domain/service"
	"handloom/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Firebase batch size limit
const firebaseBatchSize = 500

type orderNotificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// OrderNotificationServiceParams holds dependencies for OrderNotificationService, injected by Fx.
type OrderNotificationServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewOrderNotificationService creates a new order notification service instance
func NewOrderNotificationService(params OrderNotificationServiceParams) usecase.OrderNotificationUsecase {
	return &orderNotificationService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (srv *orderNotificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NotifySeller pushes a new-order alert to every active device of the seller and
// deactivates devices whose tokens FCM reports as dead. Only loading the devices
// can fail the call; send failures are counted.
func (srv *orderNotificationService) NotifySeller(ctx context.Context, event *entity.OrderPlacedEvent) (*usecase.NotifyResult, error) {
	devices, err := srv.deviceRepo.ListActiveByUser(ctx, event.SellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load seller devices")
	}

	result := &usecase.NotifyResult{DeviceCount: len(devices)}
	if len(devices) == 0 {
		srv.log(ctx).Info("Seller has no active devices", slog.Any("seller_id", event.SellerID))

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	notification := entity.NewOrderNotification(event)

	var invalidTokens []string
	for start := 0; start < len(tokens); start += firebaseBatchSize {
		end := min(start+firebaseBatchSize, len(tokens))
		batch := tokens[start:end]

		successCount, failureCount, batchInvalid, err := srv.notificationSvc.SendBatchNotification(
			ctx,
			batch,
			notification.Title,
			notification.Body,
			notification.Data,
		)
		if err != nil {
			srv.log(ctx).Error("Failed to send notification batch",
				slog.Any("order_id", event.OrderID),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			result.FailureCount += len(batch)

			continue
		}

		result.SuccessCount += successCount
		result.FailureCount += failureCount
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	if len(invalidTokens) > 0 {
		deactivated, err := srv.deviceRepo.DeactivateByTokens(ctx, invalidTokens)
		if err != nil {
			srv.log(ctx).Error("Failed to deactivate invalid devices", slog.Int("token_count", len(invalidTokens)), slog.Any("error", err))
		}
		result.DeactivatedCount = deactivated
	}

	srv.log(ctx).Info("Seller notified of order",
		slog.Any("order_id", event.OrderID),
		slog.Any("seller_id", event.SellerID),
		slog.Int("success", result.SuccessCount),
		slog.Int("failure", result.FailureCount),
		slog.Int64("deactivated", result.DeactivatedCount),
	)

	return result, nil
}
