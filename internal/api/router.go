package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/health-insights/docs"
	"github.com/blaisecz/health-insights/internal/api/handler"
	"github.com/blaisecz/health-insights/internal/api/middleware"
	"github.com/blaisecz/health-insights/internal/metrics"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	recordsHandler  *handler.RecordsHandler
	sampleHandler   *handler.SampleHandler
	settingsHandler *handler.SettingsHandler
	insightsHandler *handler.InsightsHandler
	recorder        *metrics.Recorder
	logger          *zap.Logger
}

func NewRouter(
	recordsHandler *handler.RecordsHandler,
	sampleHandler *handler.SampleHandler,
	settingsHandler *handler.SettingsHandler,
	insightsHandler *handler.InsightsHandler,
	recorder *metrics.Recorder,
	logger *zap.Logger,
) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		recordsHandler:  recordsHandler,
		sampleHandler:   sampleHandler,
		settingsHandler: settingsHandler,
		insightsHandler: insightsHandler,
		recorder:        recorder,
		logger:          logger,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger(rt.logger))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Method(http.MethodGet, "/metrics", rt.recorder.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Post("/samples", rt.sampleHandler.CreateSamples)
		r.Post("/sleep-stages", rt.sampleHandler.CreateSleepStages)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", rt.settingsHandler.Get)
			r.Put("/", rt.settingsHandler.Update)
		})

		r.Route("/records", func(r chi.Router) {
			r.Get("/", rt.recordsHandler.List)
			r.Get("/latest", rt.recordsHandler.Latest)
			r.Get("/export", rt.recordsHandler.Export)
		})
		r.Get("/sleep-debt", rt.recordsHandler.SleepDebt)
		r.Post("/refresh", rt.recordsHandler.Refresh)

		r.Route("/insights", func(r chi.Router) {
			r.Get("/", rt.insightsHandler.GetInsights)
			r.Post("/feedback", rt.insightsHandler.PostFeedback)
		})
	})

	return r
}
