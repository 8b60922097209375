package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

func TestDailyAggregator_Aggregate(t *testing.T) {
	src := newFakeSource()
	src.stages = fixedNight
	agg := NewDailyAggregator(src, 0, 0, nil, nil)

	rec, err := agg.Aggregate(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, day, rec.Date)
	assert.Equal(t, 60.0, rec.HRV.OrElse(-1))
	assert.Equal(t, 55.0, rec.RestingHR.OrElse(-1))
	assert.Equal(t, 0.1, rec.TemperatureDelta.OrElse(-1))
	assert.Equal(t, 14.0, rec.RespiratoryRate.OrElse(-1))
	assert.InDelta(t, 4.2, rec.Strain.OrElse(-1), 1e-9)

	sleep, ok := rec.Sleep.Get()
	require.True(t, ok)
	assert.InDelta(t, 1.8, sleep.DeepSleep, 1e-9)
	assert.InDelta(t, 1.9, sleep.REMSleep, 1e-9)
	assert.InDelta(t, 5.0, sleep.CoreSleep, 1e-9)
	assert.InDelta(t, 0.2, sleep.Awake, 1e-9)
	assert.Equal(t, 0, rec.IllnessRisk)
	assert.False(t, rec.IsAnomaly)
	assert.EqualValues(t, 6, src.calls.Load())
}

func TestDailyAggregator_FailedQueriesBecomeNoValue(t *testing.T) {
	src := newFakeSource()
	src.failing[domain.MetricHRV] = true
	src.failing[domain.MetricHeartRate] = true
	src.stagesErr = errSourceDown
	recorder := metrics.NewRecorder()
	agg := NewDailyAggregator(src, 0, 0, recorder, nil)

	rec, err := agg.Aggregate(context.Background(), day)
	require.NoError(t, err)

	assert.False(t, rec.HRV.IsSome())
	assert.False(t, rec.Strain.IsSome())
	assert.False(t, rec.Sleep.IsSome())
	assert.True(t, rec.RestingHR.IsSome())
	assert.True(t, rec.RespiratoryRate.IsSome())
}

func TestDailyAggregator_MissingDataIsNotZero(t *testing.T) {
	src := newFakeSource()
	delete(src.values, domain.MetricWristTemperature)
	agg := NewDailyAggregator(src, 0, 0, nil, nil)

	rec, err := agg.Aggregate(context.Background(), day)
	require.NoError(t, err)
	assert.False(t, rec.TemperatureDelta.IsSome())
	assert.False(t, rec.Sleep.IsSome())
}

func TestDailyAggregator_QueryTimeoutDegrades(t *testing.T) {
	src := newFakeSource()
	src.delay = time.Second
	agg := NewDailyAggregator(src, 0, 10*time.Millisecond, nil, nil)

	rec, err := agg.Aggregate(context.Background(), day)
	require.NoError(t, err)
	assert.False(t, rec.HRV.IsSome())
	assert.False(t, rec.RestingHR.IsSome())
}

func TestDailyAggregator_Cancelled(t *testing.T) {
	src := newFakeSource()
	src.block = make(chan struct{})
	agg := NewDailyAggregator(src, 0, 0, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := agg.Aggregate(ctx, day)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("aggregate did not return after cancellation")
	}
}

func TestDailyAggregator_BoundsInflightQueries(t *testing.T) {
	src := newFakeSource()
	src.delay = 5 * time.Millisecond
	agg := NewDailyAggregator(src, 2, 0, nil, nil)

	_, err := agg.Aggregate(context.Background(), day)
	require.NoError(t, err)
	assert.LessOrEqual(t, src.maxInflight.Load(), int64(2))
}
