package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ecodot/clubhub/internal/core/domain"
)

const dedupTTL = time.Hour

// DedupChecker provides idempotency checks for activity recording backed by
// Redis. Key format: activity:<kind>:<account_idx>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact activity has already been recorded.
func (d *DedupChecker) IsDuplicate(ctx context.Context, kind domain.ActivityKind, accountIdx int64, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(kind, accountIdx, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this activity has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, kind domain.ActivityKind, accountIdx int64, ts time.Time) error {
	return d.client.Set(ctx, d.key(kind, accountIdx, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(kind domain.ActivityKind, accountIdx int64, ts time.Time) string {
	return fmt.Sprintf("activity:%s:%d:%d", kind, accountIdx, ts.Unix())
}
