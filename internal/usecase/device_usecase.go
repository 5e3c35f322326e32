package usecase

import (
	"context"

	"handloom/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string
	DeviceID string
	Platform entity.DevicePlatform
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or updates the token of an existing one
	RegisterDevice(ctx context.Context, principal *entity.Principal, deviceInfo *DeviceInfo) (*entity.Device, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, principal *entity.Principal, deviceID uuid.UUID, fcmToken string) error

	// GetUserDevices retrieves all active devices of the caller
	GetUserDevices(ctx context.Context, principal *entity.Principal) ([]*entity.Device, error)

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, principal *entity.Principal, deviceID uuid.UUID) error
}
