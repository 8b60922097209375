package service

import (
	"context"
	"errors"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/internal/insights"
	"github.com/blaisecz/health-insights/internal/langfuse"
	"github.com/blaisecz/health-insights/internal/llm"
	"github.com/blaisecz/health-insights/internal/repository"
	"github.com/blaisecz/health-insights/internal/scoring"
	"go.uber.org/zap"
)

// NarrativeTraceName names the Langfuse trace of a narrative generation.
const NarrativeTraceName = "health-insights"

// InsightsService generates the insights overview.
type InsightsService interface {
	// Generate builds today's scores, rule-based insights and, when an LLM is
	// configured, a narrative.
	Generate(ctx context.Context) (*domain.InsightsResponse, error)
}

type insightsService struct {
	health         HealthService
	settings       repository.SettingsRepository
	llmClient      llm.InsightsLLM
	langfuseClient langfuse.Client
	logger         *zap.Logger
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	health HealthService,
	settings repository.SettingsRepository,
	llmClient llm.InsightsLLM,
	langfuseClient langfuse.Client,
	logger *zap.Logger,
) InsightsService {
	return &insightsService{
		health:         health,
		settings:       settings,
		llmClient:      llmClient,
		langfuseClient: langfuseClient,
		logger:         logger,
	}
}

func (s *insightsService) Generate(ctx context.Context) (*domain.InsightsResponse, error) {
	w, err := s.health.Window(ctx)
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

	response := &domain.InsightsResponse{
		Today:          NewRecordResponse(latest, *settings),
		Insights:       insights.Generate(w.Records),
		Anomalies:      NewRecordResponses(insights.Anomalies(w.Records), *settings),
		WeekComparison: insights.CompareWeeks(w.Records),
		Correlations:   insights.Correlations(w.Records),
	}

	if s.llmClient == nil {
		return response, nil
	}

	recent := w.Trailing(insights.RecentDays + 1)
	insightsCtx := &domain.InsightsContext{
		Today:          response.Today,
		Recent:         NewRecordResponses(recent[:len(recent)-1], *settings),
		Insights:       response.Insights,
		WeekComparison: response.WeekComparison,
		SleepDebtHours: scoring.SleepDebt(w.Trailing(insights.WeekDays), settings.TargetSleepHours),
		TargetHours:    settings.TargetSleepHours,
	}

	narrative, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			return response, nil
		}
		return nil, err
	}
	response.Narrative = narrative

	traceID, err := s.langfuseClient.CreateTrace(ctx, langfuse.TraceInput{
		Name:   NarrativeTraceName,
		Input:  insightsCtx,
		Output: narrative,
		Tags:   []string{"narrative"},
	})
	if err != nil {
		s.logger.Warn("failed to record narrative trace", zap.Error(err))
	}
	response.TraceID = traceID

	return response, nil
}
