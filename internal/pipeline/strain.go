package pipeline

import (
	"math"

	"github.com/blaisecz/health-insights/pkg/optional"
)

const (
	// MaxStrain is the top of the strain scale.
	MaxStrain = 21.0

	strainRestingHR = 60.0
	strainHRRange   = 100.0
)

// EstimateStrain maps a day's average heart rate onto the 0-21 strain scale.
func EstimateStrain(avgHeartRate optional.Value[float64]) optional.Value[float64] {
	return optional.Map(avgHeartRate, func(hr float64) float64 {
		strain := (hr - strainRestingHR) / strainHRRange * MaxStrain
		return math.Min(math.Max(strain, 0), MaxStrain)
	})
}
