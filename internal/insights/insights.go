// Package insights derives rule-based observations from a window of daily
// records: trends, consistency, weekday patterns and correlations.
package insights

import (
	"fmt"
	"math"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/internal/pipeline"
	"github.com/blaisecz/health-insights/internal/scoring"
	"github.com/blaisecz/health-insights/pkg/optional"
	"gonum.org/v1/gonum/stat"
)

const (
	// RecentDays is how far back the rules look.
	RecentDays = 14
	// WeekDays is the length of one comparison week.
	WeekDays = 7
	// MaxAnomalies caps the unusual days reported.
	MaxAnomalies = 5

	hrvTrendPercent        = 10.0
	consistencyMinNights   = 7
	consistencyMaxStdDev   = 1.0
	weekendDiffHours       = 1.0
	recoveryTrendMinDays   = 7
	recoveryTrendPoints    = 5
	temperatureSleepDeltaF = 0.5
	temperatureSleepEff    = 75.0
	correlationMinPairs    = 3
)

// Generate runs every rule over the most recent records. When nothing stands
// out it returns a single "keep tracking" insight.
func Generate(records []domain.DailyRecord) []domain.Insight {
	recent := trailing(records, RecentDays)

	var out []domain.Insight
	for _, rule := range []func([]domain.DailyRecord) (domain.Insight, bool){
		HRVTrend,
		SleepConsistency,
		WeekendSleep,
		RecoveryTrend,
		TemperatureSleep,
	} {
		if insight, ok := rule(recent); ok {
			out = append(out, insight)
		}
	}

	if len(out) == 0 {
		return []domain.Insight{{
			Kind:           domain.InsightKeepTracking,
			Title:          "Keep Tracking",
			Description:    "Continue wearing your watch to generate personalized insights.",
			Recommendation: "We need more data to provide meaningful patterns and recommendations.",
		}}
	}
	return out
}

// HRVTrend compares the latest HRV with the average of the records before it.
func HRVTrend(records []domain.DailyRecord) (domain.Insight, bool) {
	if len(records) == 0 {
		return domain.Insight{}, false
	}
	current, ok := records[len(records)-1].HRV.Get()
	if !ok {
		return domain.Insight{}, false
	}
	previous := values(records[:len(records)-1], func(r domain.DailyRecord) optional.Value[float64] { return r.HRV })
	if len(previous) == 0 {
		return domain.Insight{}, false
	}

	avg := stat.Mean(previous, nil)
	if avg == 0 {
		return domain.Insight{}, false
	}
	change := (current - avg) / avg * 100
	if math.Abs(change) <= hrvTrendPercent {
		return domain.Insight{}, false
	}

	insight := domain.Insight{
		Kind:           domain.InsightHRVTrend,
		Title:          "HRV Trend",
		Description:    fmt.Sprintf("Your HRV is %s %.0f%% compared to your 2-week average.", upDown(change), math.Abs(change)),
		Recommendation: "Great! Your body is recovering well.",
	}
	if change < 0 {
		insight.Recommendation = "Your body may need more rest and recovery."
	}
	return insight, true
}

// SleepConsistency flags nights whose duration varies by more than an hour.
func SleepConsistency(records []domain.DailyRecord) (domain.Insight, bool) {
	nights := values(records, domain.DailyRecord.TotalSleep)
	if len(nights) < consistencyMinNights {
		return domain.Insight{}, false
	}

	stdDev := stat.PopStdDev(nights, nil)
	if stdDev <= consistencyMaxStdDev {
		return domain.Insight{}, false
	}
	return domain.Insight{
		Kind:           domain.InsightSleepConsistency,
		Title:          "Sleep Consistency",
		Description:    fmt.Sprintf("Your sleep duration varies by an average of %.1f hours per night.", stdDev),
		Recommendation: "Try maintaining a consistent sleep schedule for better recovery.",
	}, true
}

// WeekendSleep compares average sleep on weekends and weekdays.
func WeekendSleep(records []domain.DailyRecord) (domain.Insight, bool) {
	weekday, weekend := WeekdayWeekendAverages(records, domain.DailyRecord.TotalSleep)
	wd, ok := weekday.Get()
	if !ok {
		return domain.Insight{}, false
	}
	we, ok := weekend.Get()
	if !ok {
		return domain.Insight{}, false
	}

	diff := we - wd
	if math.Abs(diff) <= weekendDiffHours {
		return domain.Insight{}, false
	}

	insight := domain.Insight{
		Kind:           domain.InsightWeekendSleep,
		Title:          "Weekend Sleep Pattern",
		Description:    fmt.Sprintf("You sleep %.1f hours more on weekends.", math.Abs(diff)),
		Recommendation: "This suggests weekday sleep debt. Try going to bed earlier on weekdays.",
	}
	if diff < 0 {
		insight.Description = fmt.Sprintf("You sleep %.1f hours less on weekends.", math.Abs(diff))
		insight.Recommendation = "Maintain this consistent pattern!"
	}
	return insight, true
}

// RecoveryTrend compares the last three recovery scores with the first four.
func RecoveryTrend(records []domain.DailyRecord) (domain.Insight, bool) {
	if len(records) < recoveryTrendMinDays {
		return domain.Insight{}, false
	}

	scores := make([]int, len(records))
	for i, r := range records {
		scores[i] = scoring.RecoveryScore(r)
	}
	recent := sumInts(scores[len(scores)-3:]) / 3
	previous := sumInts(scores[:4]) / 4
	trend := recent - previous
	if abs(trend) <= recoveryTrendPoints {
		return domain.Insight{}, false
	}

	if trend > 0 {
		return domain.Insight{
			Kind:           domain.InsightRecoveryTrend,
			Title:          "Recovery Trend",
			Description:    "Your recovery score is trending upward this week.",
			Recommendation: "Keep up the great work!",
		}, true
	}
	return domain.Insight{
		Kind:           domain.InsightRecoveryTrend,
		Title:          "Recovery Trend",
		Description:    "Your recovery score is trending downward this week.",
		Recommendation: "Focus on sleep quality and stress management.",
	}, true
}

// TemperatureSleep links a temperature shift on the latest day with poor
// sleep efficiency that night.
func TemperatureSleep(records []domain.DailyRecord) (domain.Insight, bool) {
	if len(records) == 0 {
		return domain.Insight{}, false
	}
	latest := records[len(records)-1]
	delta, ok := latest.TemperatureDelta.Get()
	if !ok || math.Abs(domain.FahrenheitDelta(delta)) <= temperatureSleepDeltaF {
		return domain.Insight{}, false
	}
	sleep, ok := latest.Sleep.Get()
	if !ok || sleep.Efficiency() >= temperatureSleepEff {
		return domain.Insight{}, false
	}
	return domain.Insight{
		Kind:           domain.InsightTemperatureSleep,
		Title:          "Temperature & Sleep",
		Description:    "Temperature changes may be affecting your sleep quality.",
		Recommendation: "Keep your bedroom cool and watch for other signs of illness.",
	}, true
}

// CompareWeeks averages recovery over the last seven records and the seven
// before them. An empty week averages 0.
func CompareWeeks(records []domain.DailyRecord) domain.WeekComparison {
	thisWeek := trailing(records, WeekDays)
	lastWeek := trailing(records[:len(records)-len(thisWeek)], WeekDays)

	this := averageRecovery(thisWeek)
	last := averageRecovery(lastWeek)
	return domain.WeekComparison{
		ThisWeekAvg: this,
		LastWeekAvg: last,
		Change:      this - last,
	}
}

func averageRecovery(records []domain.DailyRecord) int {
	if len(records) == 0 {
		return 0
	}
	total := 0
	for _, r := range records {
		total += scoring.RecoveryScore(r)
	}
	return total / len(records)
}

// Correlate computes the Pearson coefficient between xs and ys over the
// indices where x has a value. The coefficient is nil when there are fewer
// than three pairs or either series is constant.
func Correlate(xLabel, yLabel string, xs []optional.Value[float64], ys []float64) domain.Correlation {
	c := domain.Correlation{X: xLabel, Y: yLabel}

	var x, y []float64
	for i := range xs {
		if i >= len(ys) {
			break
		}
		if v, ok := xs[i].Get(); ok {
			x = append(x, v)
			y = append(y, ys[i])
		}
	}
	if len(x) < correlationMinPairs {
		c.Description = "Not enough data to determine correlation."
		return c
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		c.Description = "Weak or no correlation between these metrics."
		return c
	}
	c.Coefficient = &r

	switch {
	case r > 0.6:
		c.Description = fmt.Sprintf("Strong positive correlation: Higher %s tends to mean better %s.", xLabel, yLabel)
	case r > 0.3:
		c.Description = fmt.Sprintf("Moderate positive correlation between %s and %s.", xLabel, yLabel)
	case r < -0.6:
		c.Description = "Strong negative correlation detected."
	case r < -0.3:
		c.Description = "Moderate negative correlation detected."
	default:
		c.Description = "Weak or no correlation between these metrics."
	}
	return c
}

// Correlations reports how HRV and resting heart rate track the sleep and
// recovery scores over the recent records.
func Correlations(records []domain.DailyRecord) []domain.Correlation {
	recent := trailing(records, RecentDays)

	hrv := make([]optional.Value[float64], len(recent))
	rhr := make([]optional.Value[float64], len(recent))
	sleepScores := make([]float64, len(recent))
	recoveryScores := make([]float64, len(recent))
	for i, r := range recent {
		hrv[i] = r.HRV
		rhr[i] = r.RestingHR
		sleepScores[i] = float64(scoring.SleepScore(r))
		recoveryScores[i] = float64(scoring.RecoveryScore(r))
	}

	return []domain.Correlation{
		Correlate("hrv", "sleep score", hrv, sleepScores),
		Correlate("resting heart rate", "recovery score", rhr, recoveryScores),
	}
}

// TemperatureStatus describes a wrist temperature delta in °C.
func TemperatureStatus(delta float64) string {
	switch d := math.Abs(delta); {
	case d > 1.5:
		return "Significant change"
	case d > 1.0:
		return "Elevated"
	case d > 0.5:
		return "Slightly elevated"
	default:
		return "Normal range"
	}
}

// WeekdayWeekendAverages averages a metric separately over weekday and
// weekend records. Either side has no value when it has no data.
func WeekdayWeekendAverages(records []domain.DailyRecord, pick func(domain.DailyRecord) optional.Value[float64]) (weekday, weekend optional.Value[float64]) {
	var wd, we []float64
	for _, r := range records {
		v, ok := pick(r).Get()
		if !ok {
			continue
		}
		if isWeekend(r.Date) {
			we = append(we, v)
		} else {
			wd = append(wd, v)
		}
	}
	return mean(wd), mean(we)
}

// IllnessAlert reports whether a record carries enough illness indicators to
// warn about.
func IllnessAlert(r domain.DailyRecord) bool {
	return r.IllnessRisk >= pipeline.IllnessAlertThreshold
}

// Anomalies returns the most recent unusual days, oldest first.
func Anomalies(records []domain.DailyRecord) []domain.DailyRecord {
	var out []domain.DailyRecord
	for _, r := range records {
		if r.IsAnomaly {
			out = append(out, r)
		}
	}
	return trailing(out, MaxAnomalies)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func trailing(records []domain.DailyRecord, n int) []domain.DailyRecord {
	if len(records) <= n {
		return records
	}
	return records[len(records)-n:]
}

func values(records []domain.DailyRecord, pick func(domain.DailyRecord) optional.Value[float64]) []float64 {
	out := make([]float64, 0, len(records))
	for _, r := range records {
		if v, ok := pick(r).Get(); ok {
			out = append(out, v)
		}
	}
	return out
}

func mean(xs []float64) optional.Value[float64] {
	if len(xs) == 0 {
		return optional.None[float64]()
	}
	return optional.Some(stat.Mean(xs, nil))
}

func upDown(change float64) string {
	if change > 0 {
		return "up"
	}
	return "down"
}

func sumInts(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
