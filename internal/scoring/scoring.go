// Package scoring computes the composite sleep, recovery and readiness scores
// of a DailyRecord. Every function is pure.
package scoring

import (
	"math"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/pkg/optional"
)

const (
	// ConsistencyScore stands in for a sleep-timing variance component.
	ConsistencyScore = 75.0

	// DefaultStrainValue is used in readiness when strain is unknown.
	DefaultStrainValue = 80.0

	maxScore = 100
)

// Sleep-score component weights.
const (
	weightSleepTime   = 0.25
	weightEfficiency  = 0.20
	weightDeep        = 0.20
	weightREM         = 0.15
	weightAwakenings  = 0.10
	weightConsistency = 0.10
)

// SleepScore rates a night on 0-100. Without sleep data it is 0.
func SleepScore(r domain.DailyRecord) int {
	sleep, ok := r.Sleep.Get()
	if !ok {
		return 0
	}

	total := sleep.TotalSleep()
	var deepPct, remPct float64
	if total > 0 {
		deepPct = sleep.DeepSleep / total * 100
		remPct = sleep.REMSleep / total * 100
	}

	score := sleepTimeScore(total)*weightSleepTime +
		math.Min(sleep.Efficiency(), 100)*weightEfficiency +
		deepScore(deepPct)*weightDeep +
		remScore(remPct)*weightREM +
		awakeningsScore(sleep.Awakenings)*weightAwakenings +
		ConsistencyScore*weightConsistency

	return clamp(score)
}

func sleepTimeScore(hours float64) float64 {
	switch {
	case hours >= 7 && hours <= 9:
		return 100
	case hours >= 6 && hours < 7:
		return 70
	case hours >= 5 && hours < 6:
		return 50
	default:
		return 30
	}
}

func deepScore(pct float64) float64 {
	switch {
	case pct >= 13 && pct <= 23:
		return 100
	case pct >= 10 && pct < 13:
		return 70
	default:
		return 40
	}
}

func remScore(pct float64) float64 {
	switch {
	case pct >= 20 && pct <= 25:
		return 100
	case pct >= 15 && pct < 20:
		return 70
	default:
		return 40
	}
}

func awakeningsScore(n int) float64 {
	switch {
	case n <= 1:
		return 100
	case n <= 3:
		return 70
	case n <= 5:
		return 50
	default:
		return 30
	}
}

// RecoveryScore blends HRV, sleep and resting heart rate on 0-100. It is 0
// when either HRV or resting heart rate is missing.
func RecoveryScore(r domain.DailyRecord) int {
	hrv, ok := r.HRV.Get()
	if !ok {
		return 0
	}
	rhr, ok := r.RestingHR.Get()
	if !ok {
		return 0
	}

	hrvScore := math.Min(hrv/80*100, 100)
	rhrScore := math.Max(100-(rhr-50)/30*100, 0)
	score := hrvScore*0.4 + float64(SleepScore(r))*0.4 + rhrScore*0.2

	return clamp(score)
}

// ReadinessScore blends recovery, sleep and inverse strain on 0-100. Without
// sleep data it is 0.
func ReadinessScore(r domain.DailyRecord) int {
	if !r.Sleep.IsSome() {
		return 0
	}

	strainValue := optional.Map(r.Strain, func(s float64) float64 {
		return 100 - s/21*100
	}).OrElse(DefaultStrainValue)

	score := float64(RecoveryScore(r))*0.5 + float64(SleepScore(r))*0.3 + strainValue*0.2

	return clamp(score)
}

// Categorize maps a recovery or readiness score onto its tier.
func Categorize(score int) domain.Category {
	switch {
	case score >= 85:
		return domain.CategoryOptimal
	case score >= 70:
		return domain.CategoryGood
	case score >= 50:
		return domain.CategoryFair
	default:
		return domain.CategoryPoor
	}
}

// Summarize computes every score of r.
func Summarize(r domain.DailyRecord) domain.ScoreSummary {
	recovery := RecoveryScore(r)
	readiness := ReadinessScore(r)
	return domain.ScoreSummary{
		SleepScore:        SleepScore(r),
		RecoveryScore:     recovery,
		ReadinessScore:    readiness,
		RecoveryCategory:  Categorize(recovery),
		ReadinessCategory: Categorize(readiness),
	}
}

// SleepDebt is targetHours for each record minus the sleep actually recorded.
// Nights without sleep data add nothing but still count toward the target.
func SleepDebt(records []domain.DailyRecord, targetHours float64) float64 {
	slept := 0.0
	for _, r := range records {
		slept += r.TotalSleep().OrElse(0)
	}
	return targetHours*float64(len(records)) - slept
}

// clamp floors score into [0, 100].
func clamp(score float64) int {
	if math.IsNaN(score) || score <= 0 {
		return 0
	}
	if score >= maxScore {
		return maxScore
	}
	return int(math.Floor(score))
}
