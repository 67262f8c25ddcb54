package ports

import (
	"context"
	"time"
)

// SessionStore is the authoritative record of live logins. A token is only
// honoured while a matching entry exists, regardless of its signature.
type SessionStore interface {
	// Put (re)sets the session entry for the account with an absolute TTL.
	Put(ctx context.Context, accountIdx int64, token string, ttl time.Duration) error

	// Get returns the stored token and whether an entry exists.
	Get(ctx context.Context, accountIdx int64) (string, bool, error)

	// Renew slides the TTL forward without changing the stored token.
	Renew(ctx context.Context, accountIdx int64, ttl time.Duration) error

	// Remove deletes the entry. Removing an absent key is not an error.
	Remove(ctx context.Context, accountIdx int64) error
}
