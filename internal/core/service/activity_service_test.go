package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecodot/clubhub/internal/core/domain"
)

type stubActivityRepo struct {
	inserted  []domain.Activity
	insertErr error
}

func (r *stubActivityRepo) Insert(_ context.Context, activity *domain.Activity) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, *activity)
	return nil
}

type stubDedupChecker struct {
	duplicate bool
	checkErr  error
	markErr   error
	marked    int
}

func (d *stubDedupChecker) IsDuplicate(_ context.Context, _ domain.ActivityKind, _ int64, _ time.Time) (bool, error) {
	return d.duplicate, d.checkErr
}

func (d *stubDedupChecker) Mark(_ context.Context, _ domain.ActivityKind, _ int64, _ time.Time) error {
	d.marked++
	return d.markErr
}

func sampleActivity() domain.Activity {
	return domain.Activity{
		Kind:       domain.ActivityAccountLoggedIn,
		AccountIdx: 7,
		OccurredAt: time.Now().UTC(),
	}
}

func TestActivityService_Process_Persists(t *testing.T) {
	repo := &stubActivityRepo{}
	dedup := &stubDedupChecker{}
	svc := NewActivityService(repo, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), sampleActivity()); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected one persisted activity, got %d", len(repo.inserted))
	}
	if dedup.marked != 1 {
		t.Fatalf("expected dedup key marked once, got %d", dedup.marked)
	}
}

func TestActivityService_Process_SkipsDuplicate(t *testing.T) {
	repo := &stubActivityRepo{}
	dedup := &stubDedupChecker{duplicate: true}
	svc := NewActivityService(repo, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), sampleActivity()); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("expected duplicate to be skipped, got %d inserts", len(repo.inserted))
	}
	if dedup.marked != 0 {
		t.Fatalf("expected no mark for duplicate, got %d", dedup.marked)
	}
}

func TestActivityService_Process_RecordsDespiteDedupFailure(t *testing.T) {
	repo := &stubActivityRepo{}
	dedup := &stubDedupChecker{checkErr: errors.New("redis down")}
	svc := NewActivityService(repo, dedup, zerolog.Nop())

	// A broken idempotency store degrades to at-least-once, never to loss.
	if err := svc.Process(context.Background(), sampleActivity()); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected activity recorded anyway, got %d inserts", len(repo.inserted))
	}
}

func TestActivityService_Process_InsertErrorPropagates(t *testing.T) {
	insertErr := errors.New("write failed")
	repo := &stubActivityRepo{insertErr: insertErr}
	svc := NewActivityService(repo, &stubDedupChecker{}, zerolog.Nop())

	if err := svc.Process(context.Background(), sampleActivity()); !errors.Is(err, insertErr) {
		t.Fatalf("expected insert error to propagate, got %v", err)
	}
}
