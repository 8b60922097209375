package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/pkg/optional"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

func sampleWindow() *domain.Window {
	return &domain.Window{
		GeneratedAt: today.Add(9 * time.Hour),
		Records: []domain.DailyRecord{
			{
				Date:      today.AddDate(0, 0, -1),
				HRV:       optional.Some(61.5),
				RestingHR: optional.Some(54.0),
				Sleep: optional.Some(domain.SleepMetrics{
					DeepSleep: 1.5, REMSleep: 1.8, CoreSleep: 4.2, Awake: 0.3, InBed: 7.8, Awakenings: 2,
				}),
				Strain:      optional.Some(8.4),
				IllnessRisk: 1,
			},
			{
				Date:      today,
				IsAnomaly: true,
			},
		},
	}
}

func TestWindowCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewWindowCache(NewMemoryKV())
	want := sampleWindow()

	require.NoError(t, c.Put(ctx, today, want, time.Hour))
	got, err := c.Get(ctx, today)
	require.NoError(t, err)

	opts := cmp.AllowUnexported(optional.Value[float64]{}, optional.Value[domain.SleepMetrics]{})
	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Errorf("cached window mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, got.Records[1].HRV.IsSome(), "absent values must stay absent")
}

func TestWindowCache_MissOnOtherDay(t *testing.T) {
	ctx := context.Background()
	c := NewWindowCache(NewMemoryKV())
	require.NoError(t, c.Put(ctx, today, sampleWindow(), time.Hour))

	_, err := c.Get(ctx, today.AddDate(0, 0, 1))
	assert.True(t, errors.Is(err, ErrMiss))
}

func TestWindowCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := today
	kv := NewMemoryKV()
	kv.now = func() time.Time { return now }
	c := NewWindowCache(kv)

	require.NoError(t, c.Put(ctx, today, sampleWindow(), time.Minute))
	_, err := c.Get(ctx, today)
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = c.Get(ctx, today)
	assert.True(t, errors.Is(err, ErrMiss))
}

func TestWindowCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c := NewWindowCache(NewMemoryKV())
	require.NoError(t, c.Put(ctx, today, sampleWindow(), 0))

	require.NoError(t, c.Invalidate(ctx, today))
	_, err := c.Get(ctx, today)
	assert.True(t, errors.Is(err, ErrMiss))
}

func TestWindowCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, key(today), "{not json", 0))

	_, err := NewWindowCache(kv).Get(ctx, today)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMiss))
}
