package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, token string) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Header.Get("Authorization") != "Bearer "+token {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/v1/metrics/{metric}/average", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, start.Format(time.RFC3339), req.URL.Query().Get("start"))
		assert.Equal(t, end.Format(time.RFC3339), req.URL.Query().Get("end"))

		w.Header().Set("Content-Type", "application/json")
		switch chi.URLParam(req, "metric") {
		case "hrv":
			w.Write([]byte(`{"value": 58.25}`))
		case "respiratory_rate":
			w.Write([]byte(`{"value": null}`))
		case "wrist_temperature":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	r.Get("/v1/sleep/stages", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"events": []domain.StageEvent{
				{Stage: domain.SleepStageCore, StartAt: start.Add(6 * time.Hour), EndAt: start.Add(7 * time.Hour)},
				{Stage: domain.SleepStageAwake, StartAt: start.Add(5 * time.Hour), EndAt: start.Add(6 * time.Hour)},
			},
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPSource_FetchAverage(t *testing.T) {
	srv := newProvider(t, "secret")
	src := NewHTTPSource(srv.URL, "secret", nil)

	got, err := src.FetchAverage(context.Background(), domain.MetricHRV, start, end)
	require.NoError(t, err)
	assert.Equal(t, 58.25, got.OrElse(-1))
}

func TestHTTPSource_FetchAverageMissing(t *testing.T) {
	srv := newProvider(t, "secret")
	src := NewHTTPSource(srv.URL, "secret", nil)

	tests := []domain.Metric{domain.MetricRespiratoryRate, domain.MetricWristTemperature}
	for _, metric := range tests {
		t.Run(string(metric), func(t *testing.T) {
			got, err := src.FetchAverage(context.Background(), metric, start, end)
			require.NoError(t, err)
			assert.False(t, got.IsSome())
		})
	}
}

func TestHTTPSource_FetchAverageServerError(t *testing.T) {
	srv := newProvider(t, "secret")
	src := NewHTTPSource(srv.URL, "secret", nil)

	got, err := src.FetchAverage(context.Background(), domain.MetricHeartRate, start, end)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.False(t, got.IsSome())
}

func TestHTTPSource_Unauthorized(t *testing.T) {
	srv := newProvider(t, "secret")
	src := NewHTTPSource(srv.URL, "wrong", nil)

	_, err := src.FetchAverage(context.Background(), domain.MetricHRV, start, end)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestHTTPSource_FetchSleepStages(t *testing.T) {
	srv := newProvider(t, "secret")
	src := NewHTTPSource(srv.URL, "secret", nil)

	got, err := src.FetchSleepStages(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.SleepStageCore, got[0].Stage)
	assert.True(t, got[0].StartAt.Equal(start.Add(6*time.Hour)))
	assert.Equal(t, time.Hour, got[1].Duration())
}

func TestHTTPSource_Cancelled(t *testing.T) {
	srv := newProvider(t, "secret")
	src := NewHTTPSource(srv.URL, "secret", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.FetchAverage(ctx, domain.MetricHRV, start, end)
	assert.ErrorIs(t, err, context.Canceled)
}
