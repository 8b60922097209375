package scoring

import (
	"testing"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/pkg/optional"
	"github.com/stretchr/testify/assert"
)

func restedRecord() domain.DailyRecord {
	return domain.DailyRecord{
		Date:      time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		HRV:       optional.Some(90.0),
		RestingHR: optional.Some(55.0),
		Sleep: optional.Some(domain.SleepMetrics{
			DeepSleep:  1.8,
			REMSleep:   1.9,
			CoreSleep:  5.0,
			Awake:      0.2,
			InBed:      8.9,
			Awakenings: 1,
		}),
	}
}

func TestScores_RestedNight(t *testing.T) {
	r := restedRecord()

	assert.Equal(t, 97, SleepScore(r))
	assert.Equal(t, 95, RecoveryScore(r))
	// 95*0.5 + 97*0.3 + 80*0.2 = 92.6
	assert.Equal(t, 92, ReadinessScore(r))
}

func TestSleepScore_Bands(t *testing.T) {
	tests := []struct {
		name  string
		sleep domain.SleepMetrics
		want  int
	}{
		{
			// time 70, efficiency 100, deep 100, rem 100, awake 70
			name:  "short night with awakenings",
			sleep: domain.SleepMetrics{DeepSleep: 1.0, REMSleep: 1.5, CoreSleep: 4.0, InBed: 6.5, Awakenings: 3},
			want:  87,
		},
		{
			// time 30, efficiency 50, deep 40, rem 40, awake 30
			name:  "very poor night",
			sleep: domain.SleepMetrics{CoreSleep: 4, InBed: 8, Awakenings: 7},
			want:  42,
		},
		{
			// time 30, efficiency 0, deep 40, rem 40, awake 100
			name:  "empty night",
			sleep: domain.SleepMetrics{},
			want:  39,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.DailyRecord{Sleep: optional.Some(tt.sleep)}
			assert.Equal(t, tt.want, SleepScore(r))
		})
	}
}

func TestScores_MissingData(t *testing.T) {
	r := domain.DailyRecord{}
	assert.Zero(t, SleepScore(r))
	assert.Zero(t, RecoveryScore(r))
	assert.Zero(t, ReadinessScore(r))

	noRHR := restedRecord()
	noRHR.RestingHR = optional.None[float64]()
	assert.Zero(t, RecoveryScore(noRHR))

	noSleep := restedRecord()
	noSleep.Sleep = optional.None[domain.SleepMetrics]()
	assert.Zero(t, ReadinessScore(noSleep))
	// Recovery still counts HRV and resting HR.
	assert.Equal(t, 56, RecoveryScore(noSleep))
}

func TestReadinessScore_Strain(t *testing.T) {
	r := restedRecord()

	r.Strain = optional.Some(0.0)
	assert.Equal(t, 96, ReadinessScore(r))

	r.Strain = optional.Some(21.0)
	assert.Equal(t, 76, ReadinessScore(r))
}

func TestScores_Bounded(t *testing.T) {
	extreme := restedRecord()
	extreme.HRV = optional.Some(400.0)
	extreme.RestingHR = optional.Some(20.0)
	extreme.Strain = optional.Some(-10.0)

	for _, got := range []int{SleepScore(extreme), RecoveryScore(extreme), ReadinessScore(extreme)} {
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}

	worst := restedRecord()
	worst.HRV = optional.Some(0.0)
	worst.RestingHR = optional.Some(200.0)
	assert.GreaterOrEqual(t, RecoveryScore(worst), 0)
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		score int
		want  domain.Category
	}{
		{100, domain.CategoryOptimal},
		{85, domain.CategoryOptimal},
		{84, domain.CategoryGood},
		{70, domain.CategoryGood},
		{69, domain.CategoryFair},
		{50, domain.CategoryFair},
		{49, domain.CategoryPoor},
		{0, domain.CategoryPoor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Categorize(tt.score), "score %d", tt.score)
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize(restedRecord())
	assert.Equal(t, domain.ScoreSummary{
		SleepScore:        97,
		RecoveryScore:     95,
		ReadinessScore:    92,
		RecoveryCategory:  domain.CategoryOptimal,
		ReadinessCategory: domain.CategoryOptimal,
	}, got)
}

func TestSleepDebt(t *testing.T) {
	hours := []float64{7, 7, 6, 8, 7, 7}
	records := make([]domain.DailyRecord, 0, 7)
	for _, h := range hours {
		records = append(records, domain.DailyRecord{
			Sleep: optional.Some(domain.SleepMetrics{CoreSleep: h, InBed: h}),
		})
	}
	records = append(records, domain.DailyRecord{})

	assert.InDelta(t, 14.0, SleepDebt(records, 8), 1e-9)
	assert.Zero(t, SleepDebt(nil, 8))
}
