package queue

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/ecodot/clubhub/internal/api/metrics"
	"github.com/ecodot/clubhub/internal/core/domain"
	"github.com/ecodot/clubhub/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes activities to a fixed set of workers sharded by account
// idx, guaranteeing per-account ordering of the audit trail.
type Dispatcher struct {
	workers []chan domain.Activity
	service ports.ActivityService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Activity, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Activity, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an activity to the worker responsible for its account.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(activity domain.Activity) {
	i := d.shardIndex(activity.AccountIdx)
	d.workers[i] <- activity
	metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps an account idx deterministically to a worker index.
func (d *Dispatcher) shardIndex(accountIdx int64) int {
	return int(accountIdx % int64(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Activity) {
	for {
		select {
		case <-ctx.Done():
			return
		case activity, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, activity); err != nil {
				metrics.ActivitiesErrorsTotal.WithLabelValues(string(activity.Kind)).Inc()
				d.log.Error().Err(err).
					Str("kind", string(activity.Kind)).
					Int64("account_idx", activity.AccountIdx).
					Int("worker_id", id).
					Msg("activity recording failed")
			} else {
				metrics.ActivitiesRecordedTotal.WithLabelValues(string(activity.Kind)).Inc()
			}
			metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}
