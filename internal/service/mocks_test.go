package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/blaisecz/health-insights/internal/cache"
	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/internal/langfuse"
	"github.com/blaisecz/health-insights/pkg/optional"
)

// MockCollector is a mock implementation of Collector
type MockCollector struct {
	records []domain.DailyRecord
	err     error
	calls   atomic.Int32
	release chan struct{}
}

func (m *MockCollector) Collect(ctx context.Context) ([]domain.DailyRecord, error) {
	m.calls.Add(1)
	if m.release != nil {
		select {
		case <-m.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.DailyRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	settings *domain.Settings
	err      error
	saveErr  error
	saved    []domain.Settings
}

func NewMockSettingsRepository() *MockSettingsRepository {
	s := domain.DefaultSettings()
	return &MockSettingsRepository{settings: &s}
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := *m.settings
	return &s, nil
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	settings.ID = 1
	s := *settings
	m.settings = &s
	m.saved = append(m.saved, s)
	return nil
}

// MockSampleRepository is a mock implementation of SampleRepository
type MockSampleRepository struct {
	samples []domain.Sample
	stages  []domain.SleepStageSample
	err     error
}

func (m *MockSampleRepository) CreateSamples(ctx context.Context, samples []domain.Sample) error {
	if m.err != nil {
		return m.err
	}
	m.samples = append(m.samples, samples...)
	return nil
}

func (m *MockSampleRepository) CreateSleepStages(ctx context.Context, stages []domain.SleepStageSample) error {
	if m.err != nil {
		return m.err
	}
	m.stages = append(m.stages, stages...)
	return nil
}

func (m *MockSampleRepository) Average(ctx context.Context, metric domain.Metric, start, end time.Time) (optional.Value[float64], error) {
	return optional.None[float64](), m.err
}

func (m *MockSampleRepository) SleepStages(ctx context.Context, start, end time.Time) ([]domain.SleepStageSample, error) {
	return m.stages, m.err
}

// MockPublisher is a mock implementation of AlertPublisher
type MockPublisher struct {
	mu     sync.Mutex
	alerts []domain.IllnessAlert
	err    error
}

func (m *MockPublisher) Publish(ctx context.Context, alert domain.IllnessAlert) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.alerts = append(m.alerts, alert)
	return nil
}

func (m *MockPublisher) Close() error { return nil }

func (m *MockPublisher) Published() []domain.IllnessAlert {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.IllnessAlert(nil), m.alerts...)
}

// MockKV is a cache.KV that records the TTLs it was given
type MockKV struct {
	*cache.MemoryKV
	ttls []time.Duration
}

func NewMockKV() *MockKV {
	return &MockKV{MemoryKV: cache.NewMemoryKV()}
}

func (m *MockKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.ttls = append(m.ttls, ttl)
	return m.MemoryKV.Set(ctx, key, value, ttl)
}

// MockHealthService is a mock implementation of HealthService
type MockHealthService struct {
	window      *domain.Window
	err         error
	invalidated int
}

func (m *MockHealthService) Refresh(ctx context.Context) (*domain.WindowResponse, error) {
	return nil, m.err
}

func (m *MockHealthService) Window(ctx context.Context) (*domain.Window, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.window, nil
}

func (m *MockHealthService) Invalidate(ctx context.Context) error {
	m.invalidated++
	return nil
}

func (m *MockHealthService) Records(ctx context.Context) (*domain.WindowResponse, error) {
	return nil, m.err
}

func (m *MockHealthService) Latest(ctx context.Context) (*domain.LatestResponse, error) {
	return nil, m.err
}

func (m *MockHealthService) SleepDebt(ctx context.Context, days int) (*domain.SleepDebtResponse, error) {
	return nil, m.err
}

func (m *MockHealthService) Export(ctx context.Context) ([]byte, error) {
	return nil, m.err
}

// MockLLM is a mock implementation of InsightsLLM
type MockLLM struct {
	output *domain.LLMInsightsOutput
	err    error
	got    *domain.InsightsContext
}

func (m *MockLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	m.got = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool { return m.enabled }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	if !m.enabled {
		return "", nil
	}
	m.traces = append(m.traces, in)
	return "trace-1", nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}

// MockRescheduler records reschedule calls
type MockRescheduler struct {
	intervals []time.Duration
}

func (m *MockRescheduler) Reschedule(interval time.Duration) {
	m.intervals = append(m.intervals, interval)
}

var day0 = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

// windowRecords returns n ascending days ending on day0+n-1 with steady data.
func windowRecords(n int) []domain.DailyRecord {
	records := make([]domain.DailyRecord, n)
	for i := range records {
		records[i] = domain.DailyRecord{
			Date:             day0.AddDate(0, 0, i),
			HRV:              optional.Some(60.0),
			RestingHR:        optional.Some(55.0),
			TemperatureDelta: optional.Some(0.1),
			RespiratoryRate:  optional.Some(14.0),
			Sleep: optional.Some(domain.SleepMetrics{
				DeepSleep: 1.5, REMSleep: 2, CoreSleep: 3.5, Awake: 0.5, InBed: 7.5, Awakenings: 1,
			}),
			Strain: optional.Some(6.0),
		}
	}
	return records
}
