package repository

import (
	"context"

	"handloom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when the push token is registered to another device.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for push device persistence.
type DeviceRepository interface {
	// Create persists a new device.
	Create(ctx context.Context, device *entity.Device) error

	// FindByID retrieves a device.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindByUserAndDeviceID retrieves the user's registration of a client device.
	FindByUserAndDeviceID(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.Device, error)

	// ListActiveByUser returns the user's active devices.
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// UpdateToken replaces the push token and reactivates the device.
	UpdateToken(ctx context.Context, id uuid.UUID, fcmToken string) error

	// DeactivateByTokens marks devices holding any of the tokens inactive.
	DeactivateByTokens(ctx context.Context, tokens []string) (int64, error)

	// Delete soft-deletes a device.
	Delete(ctx context.Context, id uuid.UUID) error
}
