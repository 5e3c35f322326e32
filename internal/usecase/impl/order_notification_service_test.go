package impl

import (
	"context"
	"fmt"
	"testing"

	"handloom/internal/domain/entity"
	mockRepo "handloom/internal/mocks/repository"
	mockSvc "handloom/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderNotificationFixtures struct {
	service         *orderNotificationService
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockSvc.MockNotificationService
}

func createTestOrderNotificationService(t *testing.T) orderNotificationFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	svc := NewOrderNotificationService(OrderNotificationServiceParams{
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
		Logger:          newDiscardLogger(),
	}).(*orderNotificationService)

	return orderNotificationFixtures{
		service:         svc,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
	}
}

func newOrderPlacedEvent() *entity.OrderPlacedEvent {
	return &entity.OrderPlacedEvent{
		OrderID:     uuid.New(),
		ProductID:   uuid.New(),
		ProductName: "Kilim rug",
		SellerID:    uuid.New(),
		CustomerID:  uuid.New(),
		Quantity:    2,
		TotalPrice:  decimal.RequireFromString("310.00"),
	}
}

func devicesWithTokens(userID uuid.UUID, count int) []*entity.Device {
	devices := make([]*entity.Device, count)
	for i := range devices {
		devices[i] = &entity.Device{ID: uuid.New(), UserID: userID, FCMToken: fmt.Sprintf("token-%d", i), IsActive: true}
	}

	return devices
}

func TestOrderNotificationService_NotifySeller(t *testing.T) {
	fx := createTestOrderNotificationService(t)
	ctx := context.Background()
	event := newOrderPlacedEvent()
	devices := devicesWithTokens(event.SellerID, 3)

	fx.deviceRepo.EXPECT().ListActiveByUser(ctx, event.SellerID).Return(devices, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-0", "token-1", "token-2"}, "New order received", mock.AnythingOfType("string"),
			mock.MatchedBy(func(data map[string]string) bool { return data["order_id"] == event.OrderID.String() })).
		Return(2, 1, []string{"token-1"}, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"token-1"}).Return(int64(1), nil)

	result, err := fx.service.NotifySeller(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 3, result.DeviceCount)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.Equal(t, int64(1), result.DeactivatedCount)
}

func TestOrderNotificationService_NotifySeller_NoDevices(t *testing.T) {
	fx := createTestOrderNotificationService(t)
	ctx := context.Background()
	event := newOrderPlacedEvent()

	fx.deviceRepo.EXPECT().ListActiveByUser(ctx, event.SellerID).Return(nil, nil)

	result, err := fx.service.NotifySeller(ctx, event)
	require.NoError(t, err)
	assert.Zero(t, result.DeviceCount)
	fx.notificationSvc.AssertNotCalled(t, "SendBatchNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderNotificationService_NotifySeller_Batches(t *testing.T) {
	fx := createTestOrderNotificationService(t)
	ctx := context.Background()
	event := newOrderPlacedEvent()
	devices := devicesWithTokens(event.SellerID, firebaseBatchSize+20)

	fx.deviceRepo.EXPECT().ListActiveByUser(ctx, event.SellerID).Return(devices, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == firebaseBatchSize }), mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("quota exceeded")).Once()
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 20 }), mock.Anything, mock.Anything, mock.Anything).
		Return(20, 0, nil, nil).Once()

	result, err := fx.service.NotifySeller(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 20, result.SuccessCount)
	assert.Equal(t, firebaseBatchSize, result.FailureCount)
	fx.deviceRepo.AssertNotCalled(t, "DeactivateByTokens", mock.Anything, mock.Anything)
}

func TestOrderNotificationService_NotifySeller_DeviceLookupFails(t *testing.T) {
	fx := createTestOrderNotificationService(t)
	ctx := context.Background()
	event := newOrderPlacedEvent()

	fx.deviceRepo.EXPECT().ListActiveByUser(ctx, event.SellerID).Return(nil, errors.New("connection refused"))

	result, err := fx.service.NotifySeller(ctx, event)
	assert.Error(t, err)
	assert.Nil(t, result)
}
