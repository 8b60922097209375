package pipeline

import (
	"testing"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var night = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

func segment(stage domain.SleepStage, fromSec, toSec int) domain.StageEvent {
	return domain.StageEvent{
		Stage:   stage,
		StartAt: night.Add(time.Duration(fromSec) * time.Second),
		EndAt:   night.Add(time.Duration(toSec) * time.Second),
	}
}

func TestReduceSleepStages_Empty(t *testing.T) {
	assert.False(t, ReduceSleepStages(nil).IsSome())
	assert.False(t, ReduceSleepStages([]domain.StageEvent{}).IsSome())
}

func TestReduceSleepStages_Awakenings(t *testing.T) {
	tests := []struct {
		name   string
		events []domain.StageEvent
		want   int
	}{
		{
			name:   "single awake segment does not count",
			events: []domain.StageEvent{segment(domain.SleepStageAwake, 0, 60)},
			want:   0,
		},
		{
			name: "gap above five minutes counts",
			events: []domain.StageEvent{
				segment(domain.SleepStageAwake, 0, 60),
				segment(domain.SleepStageAwake, 400, 460),
			},
			want: 1,
		},
		{
			name: "gap below five minutes does not count",
			events: []domain.StageEvent{
				segment(domain.SleepStageAwake, 0, 60),
				segment(domain.SleepStageAwake, 200, 260),
			},
			want: 0,
		},
		{
			name: "gap of exactly five minutes does not count",
			events: []domain.StageEvent{
				segment(domain.SleepStageAwake, 0, 60),
				segment(domain.SleepStageAwake, 360, 420),
			},
			want: 0,
		},
		{
			name: "sleep segments between awake segments are ignored",
			events: []domain.StageEvent{
				segment(domain.SleepStageAwake, 0, 60),
				segment(domain.SleepStageCore, 60, 3600),
				segment(domain.SleepStageAwake, 3600, 3660),
				segment(domain.SleepStageDeep, 3660, 7200),
				segment(domain.SleepStageAwake, 7200, 7260),
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ReduceSleepStages(tt.events).Get()
			require.True(t, ok)
			assert.Equal(t, tt.want, got.Awakenings)
		})
	}
}

func TestReduceSleepStages_Durations(t *testing.T) {
	events := []domain.StageEvent{
		segment(domain.SleepStageInBed, 0, 9*3600),
		segment(domain.SleepStageREM, 5*3600, 6*3600),
		segment(domain.SleepStageDeep, 3600, 3*3600),
		segment(domain.SleepStageCore, 0, 3600),
		{Stage: domain.SleepStage("unknown"), StartAt: night, EndAt: night.Add(time.Hour)},
	}

	got, ok := ReduceSleepStages(events).Get()
	require.True(t, ok)

	assert.InDelta(t, 2.0, got.DeepSleep, 1e-9)
	assert.InDelta(t, 1.0, got.REMSleep, 1e-9)
	assert.InDelta(t, 1.0, got.CoreSleep, 1e-9)
	assert.InDelta(t, 0.0, got.Awake, 1e-9)
	assert.InDelta(t, 9.0, got.InBed, 1e-9)
	assert.InDelta(t, 4.0, got.TotalSleep(), 1e-9)
}

func TestReduceSleepStages_InBedNeverBelowSegments(t *testing.T) {
	events := []domain.StageEvent{
		segment(domain.SleepStageInBed, 0, 3600),
		segment(domain.SleepStageCore, 0, 4*3600),
		segment(domain.SleepStageDeep, 4*3600, 6*3600),
		segment(domain.SleepStageAwake, 6*3600, 6*3600+1800),
	}

	got, ok := ReduceSleepStages(events).Get()
	require.True(t, ok)

	assert.InDelta(t, 6.5, got.InBed, 1e-9)
	assert.GreaterOrEqual(t, got.InBed, got.TotalSleep())
	assert.LessOrEqual(t, got.Efficiency(), 100.0)
}

func TestReduceSleepStages_NoInBedSegments(t *testing.T) {
	events := []domain.StageEvent{
		segment(domain.SleepStageCore, 0, 8*3600),
	}

	got, ok := ReduceSleepStages(events).Get()
	require.True(t, ok)
	assert.InDelta(t, 8.0, got.InBed, 1e-9)
	assert.InDelta(t, 100.0, got.Efficiency(), 1e-9)
}
