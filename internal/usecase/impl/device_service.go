package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "handloom/internal/delivery/context"
	"handloom/internal/domain/entity"
	domainerrors "handloom/internal/domain/errors"
	"handloom/internal/domain/repository"
	"handloom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterDevice registers a new device or updates the token of an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, principal *entity.Principal, deviceInfo *usecase.DeviceInfo) (*entity.Device, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if isBlank(deviceInfo.FCMToken) || isBlank(deviceInfo.DeviceID) {
		return nil, validationError("fcm_token and device_id are required")
	}
	if !deviceInfo.Platform.IsValid() {
		return nil, validationError("platform must be one of ios, android, web")
	}

	existing, err := s.deviceRepo.FindByUserAndDeviceID(ctx, principal.UserID, deviceInfo.DeviceID)
	switch {
	case err == nil:
		if err := s.deviceRepo.UpdateToken(ctx, existing.ID, deviceInfo.FCMToken); err != nil {
			return nil, databaseError(err, "update device token")
		}

		updated, err := s.deviceRepo.FindByID(ctx, existing.ID)
		if err != nil {
			return nil, databaseError(err, "find device")
		}

		return updated, nil
	case !errors.Is(err, repository.ErrDeviceNotFound):
		return nil, databaseError(err, "find device by device id")
	}

	now := s.now()
	device := &entity.Device{
		ID:        uuid.New(),
		UserID:    principal.UserID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.Create(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, errors.WithStack(domainerrors.ErrDeviceAlreadyExists)
		}

		return nil, databaseError(err, "create device")
	}

	s.log(ctx).Info("Device registered", slog.Any("device_id", device.ID), slog.String("platform", string(device.Platform)))

	return device, nil
}

// ownedDevice fetches a device and verifies the caller owns it.
func (s *deviceService) ownedDevice(ctx context.Context, principal *entity.Principal, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := s.deviceRepo.FindByID(ctx, deviceID)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, errors.WithStack(domainerrors.ErrDeviceNotFound)
	}
	if err != nil {
		return nil, databaseError(err, "find device")
	}

	if !device.IsOwnedBy(principal.UserID) {
		return nil, errors.WithStack(domainerrors.ErrDeviceNotFound)
	}

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, principal *entity.Principal, deviceID uuid.UUID, fcmToken string) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}
	if isBlank(fcmToken) {
		return validationError("fcm_token is required")
	}

	device, err := s.ownedDevice(ctx, principal, deviceID)
	if err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateToken(ctx, device.ID, fcmToken); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return errors.WithStack(domainerrors.ErrDeviceAlreadyExists)
		}

		return databaseError(err, "update device token")
	}

	return nil
}

// GetUserDevices retrieves all active devices of the caller
func (s *deviceService) GetUserDevices(ctx context.Context, principal *entity.Principal) ([]*entity.Device, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	devices, err := s.deviceRepo.ListActiveByUser(ctx, principal.UserID)
	if err != nil {
		return nil, databaseError(err, "list devices")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, principal *entity.Principal, deviceID uuid.UUID) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	device, err := s.ownedDevice(ctx, principal, deviceID)
	if err != nil {
		return err
	}

	if err := s.deviceRepo.Delete(ctx, device.ID); err != nil {
		return databaseError(err, "delete device")
	}

	s.log(ctx).Info("Device deactivated", slog.Any("device_id", device.ID))

	return nil
}
