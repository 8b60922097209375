package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/pkg/optional"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type averageResponse struct {
	Value *float64 `json:"value"`
}

type stagesResponse struct {
	Events []domain.StageEvent `json:"events"`
}

// HTTPSource queries a remote health-data provider.
type HTTPSource struct {
	client *resty.Client
	logger *zap.Logger
}

// NewHTTPSource creates a provider client. An empty token sends no
// Authorization header.
func NewHTTPSource(baseURL, token string, logger *zap.Logger) *HTTPSource {
	if logger == nil {
		logger = zap.NewNop()
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetHeader("Accept", "application/json")
	if token != "" {
		client.SetAuthToken(token)
	}

	return &HTTPSource{client: client, logger: logger}
}

func (s *HTTPSource) FetchAverage(ctx context.Context, metric domain.Metric, start, end time.Time) (optional.Value[float64], error) {
	var result averageResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("metric", string(metric)).
		SetQueryParams(interval(start, end)).
		SetResult(&result).
		Get("/v1/metrics/{metric}/average")
	if err != nil {
		return optional.None[float64](), fmt.Errorf("failed to fetch %s average: %w", metric, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return optional.None[float64](), nil
	case resp.IsError():
		s.logger.Warn("Provider returned error",
			zap.String("metric", string(metric)),
			zap.Int("status_code", resp.StatusCode()),
		)
		return optional.None[float64](), fmt.Errorf("provider returned %d for %s average", resp.StatusCode(), metric)
	}

	return optional.FromPtr(result.Value), nil
}

func (s *HTTPSource) FetchSleepStages(ctx context.Context, start, end time.Time) ([]domain.StageEvent, error) {
	var result stagesResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(interval(start, end)).
		SetResult(&result).
		Get("/v1/sleep/stages")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sleep stages: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, nil
	case resp.IsError():
		s.logger.Warn("Provider returned error",
			zap.String("metric", "sleep_analysis"),
			zap.Int("status_code", resp.StatusCode()),
		)
		return nil, fmt.Errorf("provider returned %d for sleep stages", resp.StatusCode())
	}

	return result.Events, nil
}

func interval(start, end time.Time) map[string]string {
	return map[string]string{
		"start": start.Format(time.RFC3339),
		"end":   end.Format(time.RFC3339),
	}
}
