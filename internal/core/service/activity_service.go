package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecodot/clubhub/internal/core/domain"
	"github.com/ecodot/clubhub/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis) for activity recording.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, kind domain.ActivityKind, accountIdx int64, ts time.Time) (bool, error)
	Mark(ctx context.Context, kind domain.ActivityKind, accountIdx int64, ts time.Time) error
}

type activityService struct {
	repo  ports.ActivityRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, dedup DedupChecker, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single activity drained from the
// dispatcher. Duplicates are skipped silently.
func (s *activityService) Process(ctx context.Context, activity domain.Activity) error {
	isDup, err := s.dedup.IsDuplicate(ctx, activity.Kind, activity.AccountIdx, activity.OccurredAt)
	if err != nil {
		s.log.Warn().Err(err).Str("kind", string(activity.Kind)).Msg("dedup check failed, recording anyway")
	} else if isDup {
		s.log.Debug().Str("kind", string(activity.Kind)).Int64("account_idx", activity.AccountIdx).Msg("duplicate activity skipped")
		return nil
	}

	if markErr := s.dedup.Mark(ctx, activity.Kind, activity.AccountIdx, activity.OccurredAt); markErr != nil {
		s.log.Warn().Err(markErr).Str("kind", string(activity.Kind)).Msg("failed to set dedup key")
	}

	if err := s.repo.Insert(ctx, &activity); err != nil {
		return err
	}

	s.log.Debug().
		Str("kind", string(activity.Kind)).
		Int64("account_idx", activity.AccountIdx).
		Msg("activity recorded")

	return nil
}
