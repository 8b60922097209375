package service

import (
	"context"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/internal/repository"
	"go.uber.org/zap"
)

// Rescheduler applies a new refresh period.
type Rescheduler interface {
	Reschedule(interval time.Duration)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, req *domain.UpdateSettingsRequest) (*domain.Settings, error)
}

type settingsService struct {
	repo      repository.SettingsRepository
	scheduler Rescheduler
	logger    *zap.Logger
}

// NewSettingsService creates a SettingsService. scheduler may be nil when
// periodic refresh is disabled.
func NewSettingsService(repo repository.SettingsRepository, scheduler Rescheduler, logger *zap.Logger) SettingsService {
	return &settingsService{
		repo:      repo,
		scheduler: scheduler,
		logger:    logger,
	}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.repo.Get(ctx)
}

// Update applies a partial update and re-arms the scheduler when the sync
// frequency changed.
func (s *settingsService) Update(ctx context.Context, req *domain.UpdateSettingsRequest) (*domain.Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	updated := req.Apply(*current)
	if err := s.repo.Save(ctx, &updated); err != nil {
		return nil, err
	}

	if updated.SyncFrequency != current.SyncFrequency && s.scheduler != nil {
		s.scheduler.Reschedule(updated.SyncFrequency.Interval())
		s.logger.Info("sync frequency changed",
			zap.String("from", string(current.SyncFrequency)),
			zap.String("to", string(updated.SyncFrequency)),
		)
	}

	return &updated, nil
}
