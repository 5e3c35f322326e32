package session

import (
	"encoding/json"
	"testing"
	"time"

	"handloom/internal/domain/entity"
	"handloom/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "session:abc", sessionKey("abc"))
}

func TestDecodeSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	encode := func(t *testing.T, expiresAt time.Time) []byte {
		t.Helper()
		payload, err := json.Marshal(&entity.Session{
			ID:        "abc",
			UserID:    userID,
			Role:      entity.RoleWeaver,
			CreatedAt: now.Add(-time.Hour),
			ExpiresAt: expiresAt,
		})
		require.NoError(t, err)

		return payload
	}

	t.Run("live session", func(t *testing.T) {
		session, err := decodeSession(encode(t, now.Add(time.Hour)), now)

		require.NoError(t, err)
		assert.Equal(t, userID, session.UserID)
		assert.Equal(t, entity.RoleWeaver, session.Role)
	})

	t.Run("expired session", func(t *testing.T) {
		session, err := decodeSession(encode(t, now), now)

		assert.Nil(t, session)
		assert.ErrorIs(t, err, service.ErrSessionNotFound)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		_, err := decodeSession([]byte("{"), now)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrSessionNotFound)
	})
}
