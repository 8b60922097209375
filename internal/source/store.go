package source

import (
	"context"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/internal/repository"
	"github.com/blaisecz/health-insights/pkg/optional"
)

// StoreSource answers queries from the local sample store.
type StoreSource struct {
	repo repository.SampleRepository
}

func NewStoreSource(repo repository.SampleRepository) *StoreSource {
	return &StoreSource{repo: repo}
}

func (s *StoreSource) FetchAverage(ctx context.Context, metric domain.Metric, start, end time.Time) (optional.Value[float64], error) {
	return s.repo.Average(ctx, metric, start, end)
}

func (s *StoreSource) FetchSleepStages(ctx context.Context, start, end time.Time) ([]domain.StageEvent, error) {
	stages, err := s.repo.SleepStages(ctx, start, end)
	if err != nil {
		return nil, err
	}

	events := make([]domain.StageEvent, len(stages))
	for i, stage := range stages {
		events[i] = stage.Event()
	}
	return events, nil
}
