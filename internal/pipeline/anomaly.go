package pipeline

import (
	"math"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/pkg/optional"
)

// Illness indicator thresholds.
const (
	TemperatureSpikeC     = 1.0
	TemperatureJumpC      = 0.7
	HRVSuppressedRatio    = 0.85
	RestingHRElevated     = 1.10
	RespiratoryElevated   = 1.15
	PoorSleepEfficiency   = 70.0
	MaxIllnessIndicators  = 6
	IllnessAlertThreshold = 3
)

// Unusual-pattern thresholds, as a fraction of baseline.
const (
	UnusualHRVDeviation       = 0.3
	UnusualRestingHRDeviation = 0.2
	unusualRequired           = 2
)

// DetectAnomalies returns a copy of records with IllnessRisk and IsAnomaly set
// from each record's own baseline. The input is not modified.
func DetectAnomalies(records []domain.DailyRecord) []domain.DailyRecord {
	out := make([]domain.DailyRecord, len(records))
	for i, r := range records {
		base := ComputeBaseline(records, i)

		var prevTemp optional.Value[float64]
		if i > 0 {
			prevTemp = records[i-1].TemperatureDelta
		}

		r.IllnessRisk = IllnessRisk(r, prevTemp, base)
		r.IsAnomaly = IsUnusual(r, base)
		out[i] = r
	}
	return out
}

// IllnessRisk counts the warning indicators present on r. Indicators whose
// inputs are missing do not count.
func IllnessRisk(r domain.DailyRecord, prevTemp optional.Value[float64], base domain.Baseline) int {
	indicators := 0

	if temp, ok := r.TemperatureDelta.Get(); ok {
		if math.Abs(temp) > TemperatureSpikeC {
			indicators++
		}
		if prev, ok := prevTemp.Get(); ok && math.Abs(temp-prev) > TemperatureJumpC {
			indicators++
		}
	}

	if hrv, b, ok := both(r.HRV, base.HRV); ok && hrv < b*HRVSuppressedRatio {
		indicators++
	}
	if rhr, b, ok := both(r.RestingHR, base.RestingHR); ok && rhr > b*RestingHRElevated {
		indicators++
	}
	if rr, b, ok := both(r.RespiratoryRate, base.RespiratoryRate); ok && rr > b*RespiratoryElevated {
		indicators++
	}

	if sleep, ok := r.Sleep.Get(); ok && sleep.Efficiency() < PoorSleepEfficiency {
		indicators++
	}

	return indicators
}

// IsUnusual reports whether HRV and resting HR both deviate strongly from
// baseline.
func IsUnusual(r domain.DailyRecord, base domain.Baseline) bool {
	unusual := 0
	if hrv, b, ok := both(r.HRV, base.HRV); ok && math.Abs(hrv-b) > b*UnusualHRVDeviation {
		unusual++
	}
	if rhr, b, ok := both(r.RestingHR, base.RestingHR); ok && math.Abs(rhr-b) > b*UnusualRestingHRDeviation {
		unusual++
	}
	return unusual >= unusualRequired
}

func both(a, b optional.Value[float64]) (float64, float64, bool) {
	av, aok := a.Get()
	bv, bok := b.Get()
	return av, bv, aok && bok
}
