package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/pkg/optional"
	"gorm.io/gorm"
)

const insertBatchSize = 500

type SampleRepository interface {
	CreateSamples(ctx context.Context, samples []domain.Sample) error
	CreateSleepStages(ctx context.Context, stages []domain.SleepStageSample) error
	// Average returns the mean of samples of metric starting in [start, end).
	Average(ctx context.Context, metric domain.Metric, start, end time.Time) (optional.Value[float64], error)
	// SleepStages returns segments starting in [start, end), latest end first.
	SleepStages(ctx context.Context, start, end time.Time) ([]domain.SleepStageSample, error)
}

type sampleRepository struct {
	db *gorm.DB
}

func NewSampleRepository(db *gorm.DB) SampleRepository {
	return &sampleRepository{db: db}
}

func (r *sampleRepository) CreateSamples(ctx context.Context, samples []domain.Sample) error {
	if len(samples) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(samples, insertBatchSize).Error
}

func (r *sampleRepository) CreateSleepStages(ctx context.Context, stages []domain.SleepStageSample) error {
	if len(stages) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(stages, insertBatchSize).Error
}

func (r *sampleRepository) Average(ctx context.Context, metric domain.Metric, start, end time.Time) (optional.Value[float64], error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).
		Model(&domain.Sample{}).
		Select("AVG(value)").
		Where("metric = ?", metric).
		Where("start_at >= ? AND start_at < ?", start, end).
		Row().
		Scan(&avg)
	if err != nil {
		return optional.None[float64](), err
	}
	// AVG over no rows is NULL.
	if !avg.Valid {
		return optional.None[float64](), nil
	}
	return optional.Some(avg.Float64), nil
}

func (r *sampleRepository) SleepStages(ctx context.Context, start, end time.Time) ([]domain.SleepStageSample, error) {
	var stages []domain.SleepStageSample
	err := r.db.WithContext(ctx).
		Where("start_at >= ? AND start_at < ?", start, end).
		Order("end_at DESC").
		Find(&stages).Error
	if err != nil {
		return nil, err
	}
	return stages, nil
}
