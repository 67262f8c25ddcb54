package queue

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecodot/clubhub/internal/core/domain"
)

type channelActivityService struct {
	processed chan domain.Activity
}

func (s *channelActivityService) Process(_ context.Context, activity domain.Activity) error {
	s.processed <- activity
	return nil
}

func TestDispatcher_DeliversToWorker(t *testing.T) {
	svc := &channelActivityService{processed: make(chan domain.Activity, 8)}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	want := domain.Activity{
		Kind:       domain.ActivityAccountCreated,
		AccountIdx: 5,
		OccurredAt: time.Now().UTC(),
	}
	d.Enqueue(want)

	select {
	case got := <-svc.processed:
		if got.Kind != want.Kind || got.AccountIdx != want.AccountIdx {
			t.Fatalf("unexpected activity: %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("activity not processed in time")
	}
}

func TestDispatcher_ShardIsStablePerAccount(t *testing.T) {
	d := NewDispatcher(4, &channelActivityService{processed: make(chan domain.Activity, 1)}, zerolog.Nop())

	for idx := int64(0); idx < 100; idx++ {
		first := d.shardIndex(idx)
		second := d.shardIndex(idx)
		if first != second {
			t.Fatalf("shard for account %d not stable: %d vs %d", idx, first, second)
		}
		if first < 0 || first >= 4 {
			t.Fatalf("shard %d out of range", first)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &channelActivityService{processed: make(chan domain.Activity, 1)}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

func TestDispatcher_StopsOnContextCancel(t *testing.T) {
	svc := &channelActivityService{processed: make(chan domain.Activity, 8)}
	d := NewDispatcher(1, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()

	// Give the worker a moment to observe cancellation; an enqueue after that
	// must not be processed.
	time.Sleep(50 * time.Millisecond)
	d.Enqueue(domain.Activity{Kind: domain.ActivityAccountCreated, AccountIdx: 1})

	select {
	case got := <-svc.processed:
		t.Fatalf("expected no processing after cancel, got %+v", got)
	case <-time.After(100 * time.Millisecond):
	}
}
