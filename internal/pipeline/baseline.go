package pipeline

import (
	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/pkg/optional"
	"gonum.org/v1/gonum/stat"
)

// BaselineWindow is how many preceding records form a baseline.
const BaselineWindow = 14

// ComputeBaseline averages each metric over the records strictly before i,
// at most BaselineWindow of them. Records without a value are skipped; a
// metric with no values at all has no baseline.
func ComputeBaseline(records []domain.DailyRecord, i int) domain.Baseline {
	if i > len(records) {
		i = len(records)
	}
	prior := records[max(0, i-BaselineWindow):max(0, i)]

	return domain.Baseline{
		HRV:             meanOf(prior, func(r domain.DailyRecord) optional.Value[float64] { return r.HRV }),
		RestingHR:       meanOf(prior, func(r domain.DailyRecord) optional.Value[float64] { return r.RestingHR }),
		RespiratoryRate: meanOf(prior, func(r domain.DailyRecord) optional.Value[float64] { return r.RespiratoryRate }),
	}
}

func meanOf(records []domain.DailyRecord, pick func(domain.DailyRecord) optional.Value[float64]) optional.Value[float64] {
	values := make([]float64, 0, len(records))
	for _, r := range records {
		if v, ok := pick(r).Get(); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return optional.None[float64]()
	}
	return optional.Some(stat.Mean(values, nil))
}
