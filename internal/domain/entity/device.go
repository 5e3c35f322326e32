package entity

import (
	"time"

	"github.com/google/uuid"
)

// DevicePlatform is the client platform a push token belongs to.
type DevicePlatform string

const (
	PlatformIOS     DevicePlatform = "ios"
	PlatformAndroid DevicePlatform = "android"
	PlatformWeb     DevicePlatform = "web"
)

// IsValid checks if the platform is supported.
func (p DevicePlatform) IsValid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return true
	default:
		return false
	}
}

// Device is a client registered to receive push notifications, e.g. new-order alerts for sellers.
type Device struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	FCMToken  string         `json:"fcm_token"`
	DeviceID  string         `json:"device_id"`
	Platform  DevicePlatform `json:"platform"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// IsOwnedBy reports whether the device belongs to userID.
func (d *Device) IsOwnedBy(userID uuid.UUID) bool {
	return d != nil && d.UserID == userID
}
