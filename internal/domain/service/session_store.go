package service

import (
	"context"
	"time"

	"handloom/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when a session is missing or expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists login sessions outside the request goroutine.
type SessionStore interface {
	// Save stores the session until ttl elapses
	Save(ctx context.Context, session *entity.Session, ttl time.Duration) error

	// Find loads a live session
	Find(ctx context.Context, sessionID string) (*entity.Session, error)

	// Delete removes a session; deleting a missing session is not an error
	Delete(ctx context.Context, sessionID string) error
}
