package handler

import "github.com/ecodot/clubhub/internal/core/domain"

// ActivityDispatcher is the interface handlers use to record audit-trail
// activities. Recording is fire-and-forget.
type ActivityDispatcher interface {
	Enqueue(activity domain.Activity)
}

// noopDispatcher satisfies ActivityDispatcher when the trail is disabled.
type noopDispatcher struct{}

func (noopDispatcher) Enqueue(domain.Activity) {}

// NoopDispatcher returns a dispatcher that drops all activities.
func NoopDispatcher() ActivityDispatcher {
	return noopDispatcher{}
}
