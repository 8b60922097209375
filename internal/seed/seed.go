// Package seed writes synthetic wearable data for local development.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/internal/pipeline"
	"github.com/blaisecz/health-insights/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const seededDays = 40

// Run seeds the last 40 days ending at now. Days that already have HRV
// samples are skipped, so it is safe to call multiple times.
func Run(ctx context.Context, repo repository.SampleRepository, now time.Time, loc *time.Location, rng *rand.Rand, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	today := pipeline.StartOfDay(now, loc)

	seeded := 0
	for i := 0; i < seededDays; i++ {
		day := today.AddDate(0, 0, -i)

		existing, err := repo.Average(ctx, domain.MetricHRV, day, day.AddDate(0, 0, 1))
		if err != nil {
			return fmt.Errorf("failed to check day %s: %w", day.Format("2006-01-02"), err)
		}
		if existing.IsSome() {
			continue
		}

		if err := repo.CreateSamples(ctx, samplesForDay(day, rng)); err != nil {
			return fmt.Errorf("failed to create samples for %s: %w", day.Format("2006-01-02"), err)
		}
		if err := repo.CreateSleepStages(ctx, nightForDay(day, rng)); err != nil {
			return fmt.Errorf("failed to create sleep stages for %s: %w", day.Format("2006-01-02"), err)
		}
		seeded++
	}

	logger.Info("seed completed", zap.Int("days_seeded", seeded), zap.Int("days_skipped", seededDays-seeded))
	return nil
}

func samplesForDay(day time.Time, rng *rand.Rand) []domain.Sample {
	var samples []domain.Sample
	add := func(metric domain.Metric, value float64, at time.Time, length time.Duration) {
		samples = append(samples, domain.Sample{
			ID:      uuid.New(),
			Metric:  metric,
			Value:   value,
			StartAt: at.UTC(),
			EndAt:   at.Add(length).UTC(),
		})
	}

	// Roughly one day in ten looks like the start of a cold.
	sick := rng.Float64() < 0.1

	hrvMean := 55 + rng.NormFloat64()*6
	rhr := 56 + rng.NormFloat64()*2
	temp := rng.NormFloat64() * 0.15
	rr := 14 + rng.NormFloat64()*0.4
	if sick {
		hrvMean *= 0.75
		rhr += 6
		temp += 0.6
		rr += 1.5
	}

	for h := 1; h <= 5; h += 2 {
		add(domain.MetricHRV, hrvMean+rng.NormFloat64()*4, day.Add(time.Duration(h)*time.Hour), 5*time.Minute)
	}
	add(domain.MetricRestingHeartRate, rhr, day.Add(7*time.Hour), time.Minute)
	add(domain.MetricWristTemperature, temp, day.Add(6*time.Hour), 0)
	add(domain.MetricRespiratoryRate, rr, day.Add(4*time.Hour), time.Minute)

	activity := 70 + rng.Float64()*30
	for h := 8; h < 22; h++ {
		add(domain.MetricHeartRate, activity+rng.NormFloat64()*10, day.Add(time.Duration(h)*time.Hour), 0)
	}
	return samples
}

// nightForDay builds a night starting shortly after midnight: one in-bed
// segment covering cycles of core, deep and REM sleep with a couple of
// awake segments.
func nightForDay(day time.Time, rng *rand.Rand) []domain.SleepStageSample {
	bedtime := day.Add(time.Duration(10+rng.Intn(50)) * time.Minute)
	cursor := bedtime.Add(time.Duration(5+rng.Intn(15)) * time.Minute)

	var stages []domain.SleepStageSample
	segment := func(stage domain.SleepStage, d time.Duration) {
		stages = append(stages, domain.SleepStageSample{
			ID:      uuid.New(),
			Stage:   stage,
			StartAt: cursor.UTC(),
			EndAt:   cursor.Add(d).UTC(),
		})
		cursor = cursor.Add(d)
	}
	minutes := func(lo, hi int) time.Duration {
		return time.Duration(lo+rng.Intn(hi-lo+1)) * time.Minute
	}

	cycles := 4 + rng.Intn(2)
	awakeAfter := map[int]bool{rng.Intn(cycles - 1): true, cycles - 1: true}
	for c := 0; c < cycles; c++ {
		segment(domain.SleepStageCore, minutes(30, 50))
		segment(domain.SleepStageDeep, minutes(10, 30))
		segment(domain.SleepStageREM, minutes(15, 35))
		if awakeAfter[c] {
			segment(domain.SleepStageAwake, minutes(3, 12))
		}
	}

	inBed := domain.SleepStageSample{
		ID:      uuid.New(),
		Stage:   domain.SleepStageInBed,
		StartAt: bedtime.UTC(),
		EndAt:   cursor.Add(minutes(5, 20)).UTC(),
	}
	return append([]domain.SleepStageSample{inBed}, stages...)
}
