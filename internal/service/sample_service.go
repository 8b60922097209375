package service

import (
	"context"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SampleService stores raw samples for the local data source.
type SampleService interface {
	IngestSamples(ctx context.Context, req *domain.CreateSamplesRequest) (*domain.IngestResponse, error)
	IngestSleepStages(ctx context.Context, req *domain.CreateSleepStagesRequest) (*domain.IngestResponse, error)
}

type sampleService struct {
	repo   repository.SampleRepository
	health HealthService
	logger *zap.Logger
}

func NewSampleService(repo repository.SampleRepository, health HealthService, logger *zap.Logger) SampleService {
	return &sampleService{
		repo:   repo,
		health: health,
		logger: logger,
	}
}

func (s *sampleService) IngestSamples(ctx context.Context, req *domain.CreateSamplesRequest) (*domain.IngestResponse, error) {
	samples := make([]domain.Sample, len(req.Samples))
	for i, in := range req.Samples {
		samples[i] = domain.Sample{
			ID:      uuid.New(),
			Metric:  in.Metric,
			Value:   in.Value,
			StartAt: in.StartAt.UTC(),
			EndAt:   in.EndAt.UTC(),
		}
	}

	if err := s.repo.CreateSamples(ctx, samples); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	return &domain.IngestResponse{Accepted: len(samples)}, nil
}

func (s *sampleService) IngestSleepStages(ctx context.Context, req *domain.CreateSleepStagesRequest) (*domain.IngestResponse, error) {
	stages := make([]domain.SleepStageSample, len(req.Events))
	for i, in := range req.Events {
		stages[i] = domain.SleepStageSample{
			ID:      uuid.New(),
			Stage:   in.Stage,
			StartAt: in.StartAt.UTC(),
			EndAt:   in.EndAt.UTC(),
		}
	}

	if err := s.repo.CreateSleepStages(ctx, stages); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	return &domain.IngestResponse{Accepted: len(stages)}, nil
}

// invalidate drops the cached window so the next read sees the new samples.
func (s *sampleService) invalidate(ctx context.Context) {
	if err := s.health.Invalidate(ctx); err != nil {
		s.logger.Warn("failed to invalidate window cache", zap.Error(err))
	}
}
