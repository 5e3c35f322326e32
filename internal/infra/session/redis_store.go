package session

import (
	"context"
	"encoding/json"
	"time"

	"handloom/internal/domain/entity"
	"handloom/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// redisStore implements service.SessionStore. Each session is one JSON value with a TTL.
type redisStore struct {
	client redis.Cmdable
	now    func() time.Time
}

// NewRedisStore is the constructor for redisStore.
func NewRedisStore(client *redis.Client) service.SessionStore {
	return &redisStore{client: client, now: time.Now}
}

func sessionKey(sessionID string) string {
	return keyPrefix + sessionID
}

func (s *redisStore) Save(ctx context.Context, session *entity.Session, ttl time.Duration) error {
	if ttl <= 0 {
		return errors.New("session ttl must be positive")
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	if err := s.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store session")
	}

	return nil
}

func (s *redisStore) Find(ctx context.Context, sessionID string) (*entity.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}

	return decodeSession(payload, s.now())
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// decodeSession rejects payloads whose own expiry has passed even if Redis still holds them.
func decodeSession(payload []byte, now time.Time) (*entity.Session, error) {
	var session entity.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	if session.IsExpired(now) {
		return nil, service.ErrSessionNotFound
	}

	return &session, nil
}
