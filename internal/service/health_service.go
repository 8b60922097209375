package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/blaisecz/health-insights/internal/cache"
	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/internal/export"
	"github.com/blaisecz/health-insights/internal/insights"
	"github.com/blaisecz/health-insights/internal/metrics"
	"github.com/blaisecz/health-insights/internal/pipeline"
	"github.com/blaisecz/health-insights/internal/publisher"
	"github.com/blaisecz/health-insights/internal/repository"
	"github.com/blaisecz/health-insights/internal/scoring"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultSleepDebtDays is the sleep debt period when none is given.
	DefaultSleepDebtDays = 7
	// MaxSleepDebtDays is the longest sleep debt period.
	MaxSleepDebtDays = pipeline.DefaultWindowDays
)

// Collector builds the date-ascending daily window.
type Collector interface {
	Collect(ctx context.Context) ([]domain.DailyRecord, error)
}

// HealthService serves the collected window.
type HealthService interface {
	// Refresh recollects the window regardless of the cache.
	Refresh(ctx context.Context) (*domain.WindowResponse, error)
	// Window returns today's cached window, collecting it on a miss.
	Window(ctx context.Context) (*domain.Window, error)
	// Invalidate drops today's cached window.
	Invalidate(ctx context.Context) error
	Records(ctx context.Context) (*domain.WindowResponse, error)
	Latest(ctx context.Context) (*domain.LatestResponse, error)
	SleepDebt(ctx context.Context, days int) (*domain.SleepDebtResponse, error)
	// Export renders the window as an xlsx workbook.
	Export(ctx context.Context) ([]byte, error)
}

type healthService struct {
	collector Collector
	windows   *cache.WindowCache
	settings  repository.SettingsRepository
	alerts    publisher.AlertPublisher
	recorder  *metrics.Recorder
	logger    *zap.Logger
	location  *time.Location
	now       func() time.Time
	tracer    trace.Tracer
	group     singleflight.Group

	mu          sync.Mutex
	lastAlerted time.Time
}

// NewHealthService creates a HealthService. Windows are cached per calendar
// day in loc.
func NewHealthService(
	collector Collector,
	windows *cache.WindowCache,
	settings repository.SettingsRepository,
	alerts publisher.AlertPublisher,
	recorder *metrics.Recorder,
	logger *zap.Logger,
	loc *time.Location,
) HealthService {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &healthService{
		collector: collector,
		windows:   windows,
		settings:  settings,
		alerts:    alerts,
		recorder:  recorder,
		logger:    logger.With(zap.String("component", "health_service")),
		location:  loc,
		now:       time.Now,
		tracer:    otel.Tracer("health-insights/service"),
	}
}

func (s *healthService) Refresh(ctx context.Context) (*domain.WindowResponse, error) {
	w, err := s.refresh(ctx)
	if err != nil {
		return nil, err
	}
	return s.present(ctx, w)
}

// refresh collects once even when several callers ask at the same time.
// The shared collection outlives any single caller; each caller stops
// waiting on its own cancellation.
func (s *healthService) refresh(ctx context.Context) (*domain.Window, error) {
	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan("window", func() (any, error) {
		return s.collect(shared)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.Window), nil
	}
}

func (s *healthService) collect(ctx context.Context) (*domain.Window, error) {
	ctx, span := s.tracer.Start(ctx, "HealthService.Refresh")
	defer span.End()

	records, err := s.collector.Collect(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "collect failed")
		return nil, fmt.Errorf("collect window: %w", err)
	}
	w := &domain.Window{GeneratedAt: s.now().UTC(), Records: records}

	ttl := domain.DefaultSettings().SyncFrequency.Interval()
	if settings, err := s.settings.Get(ctx); err != nil {
		s.logger.Warn("failed to load settings, using default cache ttl", zap.Error(err))
	} else {
		ttl = settings.SyncFrequency.Interval()
	}
	if err := s.windows.Put(ctx, s.today(), w, ttl); err != nil {
		s.logger.Warn("failed to cache window", zap.Error(err))
	}

	latest, ok := w.Latest()
	if !ok {
		return w, nil
	}
	span.SetAttributes(
		attribute.Int("latest.illness_risk", latest.IllnessRisk),
		attribute.Bool("latest.is_anomaly", latest.IsAnomaly),
	)
	s.recorder.SetLatest(latest.IllnessRisk, scoring.ReadinessScore(latest))
	s.maybeAlert(ctx, latest, w.GeneratedAt)

	return w, nil
}

// maybeAlert publishes at most one alert per day.
func (s *healthService) maybeAlert(ctx context.Context, latest domain.DailyRecord, at time.Time) {
	if !insights.IllnessAlert(latest) && !latest.IsAnomaly {
		return
	}

	s.mu.Lock()
	if s.lastAlerted.Equal(latest.Date) {
		s.mu.Unlock()
		return
	}
	s.lastAlerted = latest.Date
	s.mu.Unlock()

	alert := domain.IllnessAlert{
		ID:          uuid.New(),
		Date:        latest.Date,
		IllnessRisk: latest.IllnessRisk,
		IsAnomaly:   latest.IsAnomaly,
		GeneratedAt: at,
	}
	if err := s.alerts.Publish(ctx, alert); err != nil {
		s.logger.Warn("failed to publish alert", zap.Error(err))
		s.mu.Lock()
		s.lastAlerted = time.Time{}
		s.mu.Unlock()
	}
}

func (s *healthService) Window(ctx context.Context) (*domain.Window, error) {
	w, err := s.windows.Get(ctx, s.today())
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("window cache read failed", zap.Error(err))
	}
	return s.refresh(ctx)
}

func (s *healthService) Invalidate(ctx context.Context) error {
	return s.windows.Invalidate(ctx, s.today())
}

func (s *healthService) Records(ctx context.Context) (*domain.WindowResponse, error) {
	w, err := s.Window(ctx)
	if err != nil {
		return nil, err
	}
	return s.present(ctx, w)
}

func (s *healthService) Latest(ctx context.Context) (*domain.LatestResponse, error) {
	w, err := s.Window(ctx)
	if err != nil {
		return nil, err
	}
	latest, ok := w.Latest()
	if !ok {
		return nil, domain.ErrNoData
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	record := NewRecordResponse(latest, *settings)

	return &domain.LatestResponse{
		Record:          record,
		RecoveryAdvice:  record.Scores.RecoveryCategory.RecoveryAdvice(),
		ReadinessAdvice: record.Scores.ReadinessCategory.ReadinessAdvice(),
		IllnessAlert:    insights.IllnessAlert(latest),
	}, nil
}

func (s *healthService) SleepDebt(ctx context.Context, days int) (*domain.SleepDebtResponse, error) {
	if days < 1 || days > MaxSleepDebtDays {
		return nil, domain.ErrInvalidInput
	}

	w, err := s.Window(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.SleepDebtResponse{
		Days:        days,
		TargetHours: settings.TargetSleepHours,
		DebtHours:   scoring.SleepDebt(w.Trailing(days), settings.TargetSleepHours),
	}, nil
}

func (s *healthService) Export(ctx context.Context) ([]byte, error) {
	resp, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return export.Workbook(resp.Records)
}

func (s *healthService) present(ctx context.Context, w *domain.Window) (*domain.WindowResponse, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.WindowResponse{
		GeneratedAt: w.GeneratedAt,
		Records:     NewRecordResponses(w.Records, *settings),
	}, nil
}

func (s *healthService) today() time.Time {
	return pipeline.StartOfDay(s.now(), s.location)
}
