package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore is the authoritative record of live logins, backed by Redis.
// Key format: session:<account_idx> → signed token, TTL = login TTL.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Put (re)sets the session entry and its absolute TTL.
func (s *SessionStore) Put(ctx context.Context, accountIdx int64, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(accountIdx), token, ttl).Err(); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return nil
}

// Get returns the stored token and whether an entry exists.
func (s *SessionStore) Get(ctx context.Context, accountIdx int64) (string, bool, error) {
	token, err := s.client.Get(ctx, s.key(accountIdx)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("session get: %w", err)
	}
	return token, true, nil
}

// Renew slides the TTL forward without changing the stored token. Renewing an
// already-expired entry is a no-op.
func (s *SessionStore) Renew(ctx context.Context, accountIdx int64, ttl time.Duration) error {
	if err := s.client.Expire(ctx, s.key(accountIdx), ttl).Err(); err != nil {
		return fmt.Errorf("session renew: %w", err)
	}
	return nil
}

// Remove deletes the session entry. Removing an absent key is not an error.
func (s *SessionStore) Remove(ctx context.Context, accountIdx int64) error {
	if err := s.client.Del(ctx, s.key(accountIdx)).Err(); err != nil {
		return fmt.Errorf("session remove: %w", err)
	}
	return nil
}

func (s *SessionStore) key(accountIdx int64) string {
	return fmt.Sprintf("session:%d", accountIdx)
}
