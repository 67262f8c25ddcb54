package ports

import (
	"context"

	"github.com/ecodot/clubhub/internal/core/domain"
)

// ActivityRepository persists audit-trail entries.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
}

// ActivityService processes a single activity drained from the dispatcher.
type ActivityService interface {
	Process(ctx context.Context, activity domain.Activity) error
}
