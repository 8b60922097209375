package pipeline

import (
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/pkg/optional"
)

// AwakeningGap is the minimum gap between two awake segments for the second
// one to count as a separate awakening.
const AwakeningGap = 300 * time.Second

// ReduceSleepStages folds a night's stage events into SleepMetrics.
// Events are processed in the order given (end time descending from the
// source). An empty input yields no value.
func ReduceSleepStages(events []domain.StageEvent) optional.Value[domain.SleepMetrics] {
	if len(events) == 0 {
		return optional.None[domain.SleepMetrics]()
	}

	var deep, rem, core, awake, inBed time.Duration
	var awakenings int
	var lastAwakeEnd time.Time
	seenAwake := false

	for _, e := range events {
		d := e.Duration()
		switch e.Stage {
		case domain.SleepStageDeep:
			deep += d
		case domain.SleepStageREM:
			rem += d
		case domain.SleepStageCore:
			core += d
		case domain.SleepStageAwake:
			awake += d
			if seenAwake && e.StartAt.Sub(lastAwakeEnd) > AwakeningGap {
				awakenings++
			}
			lastAwakeEnd = e.EndAt
			seenAwake = true
		case domain.SleepStageInBed:
			inBed += d
		}
	}

	// A source can report less time in bed than its own segments add up to.
	totalSleep := deep + rem + core
	if minInBed := totalSleep + awake; inBed < minInBed {
		inBed = minInBed
	}

	return optional.Some(domain.SleepMetrics{
		DeepSleep:  deep.Hours(),
		REMSleep:   rem.Hours(),
		CoreSleep:  core.Hours(),
		Awake:      awake.Hours(),
		InBed:      inBed.Hours(),
		Awakenings: awakenings,
	})
}
