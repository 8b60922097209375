package pipeline

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/pkg/optional"
)

var errSourceDown = errors.New("source unavailable")

// fakeSource serves fixed values per metric and records call concurrency.
type fakeSource struct {
	values    map[domain.Metric]float64
	failing   map[domain.Metric]bool
	stages    func(start, end time.Time) []domain.StageEvent
	stagesErr error
	delay     time.Duration
	block     chan struct{}

	inflight    atomic.Int64
	maxInflight atomic.Int64
	calls       atomic.Int64

	mu      sync.Mutex
	queried map[time.Time]int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		values: map[domain.Metric]float64{
			domain.MetricHRV:              60,
			domain.MetricRestingHeartRate: 55,
			domain.MetricWristTemperature: 0.1,
			domain.MetricRespiratoryRate:  14,
			domain.MetricHeartRate:        80,
		},
		failing: map[domain.Metric]bool{},
		queried: map[time.Time]int{},
	}
}

func (f *fakeSource) enter(ctx context.Context, start time.Time) error {
	f.calls.Add(1)
	n := f.inflight.Add(1)
	for {
		cur := f.maxInflight.Load()
		if n <= cur || f.maxInflight.CompareAndSwap(cur, n) {
			break
		}
	}

	f.mu.Lock()
	f.queried[start]++
	f.mu.Unlock()

	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (f *fakeSource) FetchAverage(ctx context.Context, metric domain.Metric, start, end time.Time) (optional.Value[float64], error) {
	defer f.inflight.Add(-1)
	if err := f.enter(ctx, start); err != nil {
		return optional.None[float64](), err
	}
	if f.failing[metric] {
		return optional.None[float64](), errSourceDown
	}
	v, ok := f.values[metric]
	if !ok {
		return optional.None[float64](), nil
	}
	return optional.Some(v), nil
}

func (f *fakeSource) FetchSleepStages(ctx context.Context, start, end time.Time) ([]domain.StageEvent, error) {
	defer f.inflight.Add(-1)
	if err := f.enter(ctx, start); err != nil {
		return nil, err
	}
	if f.stagesErr != nil {
		return nil, f.stagesErr
	}
	if f.stages == nil {
		return nil, nil
	}
	return f.stages(start, end), nil
}

// fixedNight returns a night of 1.8h deep, 1.9h REM, 5h core and 0.2h awake
// ending at the start of the queried day.
func fixedNight(start, _ time.Time) []domain.StageEvent {
	at := start.Add(-9 * time.Hour)
	seg := func(stage domain.SleepStage, d time.Duration) domain.StageEvent {
		e := domain.StageEvent{Stage: stage, StartAt: at, EndAt: at.Add(d)}
		at = at.Add(d)
		return e
	}
	events := []domain.StageEvent{
		seg(domain.SleepStageCore, 150*time.Minute),
		seg(domain.SleepStageDeep, 108*time.Minute),
		seg(domain.SleepStageAwake, 12*time.Minute),
		seg(domain.SleepStageREM, 114*time.Minute),
		seg(domain.SleepStageCore, 150*time.Minute),
	}
	// End time descending, as a provider reports them.
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	return events
}

// recordingAggregator returns a canned record per day.
type recordingAggregator struct {
	build func(day time.Time) domain.DailyRecord
	err   error
}

func (a *recordingAggregator) Aggregate(ctx context.Context, day time.Time) (domain.DailyRecord, error) {
	if a.err != nil {
		return domain.DailyRecord{}, a.err
	}
	if err := ctx.Err(); err != nil {
		return domain.DailyRecord{}, err
	}
	return a.build(day), nil
}
