package handler

import (
	"context"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/internal/langfuse"
)

var testDay = time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC)

// MockHealthService is a mock implementation of HealthService
type MockHealthService struct {
	recordsFunc   func(ctx context.Context) (*domain.WindowResponse, error)
	latestFunc    func(ctx context.Context) (*domain.LatestResponse, error)
	sleepDebtFunc func(ctx context.Context, days int) (*domain.SleepDebtResponse, error)
	exportFunc    func(ctx context.Context) ([]byte, error)
	refreshed     int
}

func (m *MockHealthService) Refresh(ctx context.Context) (*domain.WindowResponse, error) {
	m.refreshed++
	return m.Records(ctx)
}

func (m *MockHealthService) Window(ctx context.Context) (*domain.Window, error) {
	return &domain.Window{}, nil
}

func (m *MockHealthService) Invalidate(ctx context.Context) error {
	return nil
}

func (m *MockHealthService) Records(ctx context.Context) (*domain.WindowResponse, error) {
	if m.recordsFunc != nil {
		return m.recordsFunc(ctx)
	}
	return &domain.WindowResponse{
		GeneratedAt: testDay,
		Records:     []domain.DailyRecordResponse{{Date: testDay}},
	}, nil
}

func (m *MockHealthService) Latest(ctx context.Context) (*domain.LatestResponse, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx)
	}
	return &domain.LatestResponse{Record: domain.DailyRecordResponse{Date: testDay}}, nil
}

func (m *MockHealthService) SleepDebt(ctx context.Context, days int) (*domain.SleepDebtResponse, error) {
	if m.sleepDebtFunc != nil {
		return m.sleepDebtFunc(ctx, days)
	}
	return &domain.SleepDebtResponse{Days: days, TargetHours: 8}, nil
}

func (m *MockHealthService) Export(ctx context.Context) ([]byte, error) {
	if m.exportFunc != nil {
		return m.exportFunc(ctx)
	}
	return []byte("PK\x03\x04"), nil
}

// MockSampleService is a mock implementation of SampleService
type MockSampleService struct {
	samplesReq *domain.CreateSamplesRequest
	stagesReq  *domain.CreateSleepStagesRequest
	err        error
}

func (m *MockSampleService) IngestSamples(ctx context.Context, req *domain.CreateSamplesRequest) (*domain.IngestResponse, error) {
	m.samplesReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &domain.IngestResponse{Accepted: len(req.Samples)}, nil
}

func (m *MockSampleService) IngestSleepStages(ctx context.Context, req *domain.CreateSleepStagesRequest) (*domain.IngestResponse, error) {
	m.stagesReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &domain.IngestResponse{Accepted: len(req.Events)}, nil
}

// MockSettingsService is a mock implementation of SettingsService
type MockSettingsService struct {
	settings domain.Settings
	err      error
}

func (m *MockSettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *MockSettingsService) Update(ctx context.Context, req *domain.UpdateSettingsRequest) (*domain.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.settings = req.Apply(m.settings)
	s := m.settings
	return &s, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx)
	}
	return &domain.InsightsResponse{
		Today:    domain.DailyRecordResponse{Date: testDay},
		Insights: []domain.Insight{{Kind: domain.InsightKeepTracking, Title: "Keep Tracking"}},
	}, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	scores []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool { return true }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "trace-1", nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}
