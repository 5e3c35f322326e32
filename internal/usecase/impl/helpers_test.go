package impl

import (
	"io"
	"log/slog"
	"time"

	"handloom/config"
	"handloom/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(sessionTTL time.Duration) *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			TTL:        sessionTTL,
			CookieName: "sessionid",
		},
		Auth: &config.AuthConfig{
			BcryptCost: 4,
		},
	}
}

func newPrincipal(role entity.Role) *entity.Principal {
	return &entity.Principal{
		UserID:    uuid.New(),
		Username:  string(role) + "-user",
		Role:      role,
		SessionID: uuid.NewString(),
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func intPtr(v int) *int {
	return &v
}

func stringPtr(v string) *string {
	return &v
}
