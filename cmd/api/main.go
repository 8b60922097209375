// Health Insights API
//
// REST API serving daily health aggregates, recovery and readiness scores,
// and insights derived from wearable data.
//
//	@title			Health Insights API
//	@version		1.0
//	@description	Daily health aggregates, recovery and readiness scores, and insights derived from wearable data.
//
//	@BasePath	/v1
//
//	@tag.name			records
//	@tag.description	Daily window, latest day, sleep debt and export
//
//	@tag.name			samples
//	@tag.description	Sample and sleep-stage ingestion
//
//	@tag.name			settings
//	@tag.description	Sync frequency, sleep target and temperature display
//
//	@tag.name			insights
//	@tag.description	Rule-based insights, narrative and feedback
package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/health-insights/internal/api"
	"github.com/blaisecz/health-insights/internal/api/handler"
	"github.com/blaisecz/health-insights/internal/cache"
	"github.com/blaisecz/health-insights/internal/config"
	"github.com/blaisecz/health-insights/internal/langfuse"
	"github.com/blaisecz/health-insights/internal/llm"
	"github.com/blaisecz/health-insights/internal/logging"
	"github.com/blaisecz/health-insights/internal/metrics"
	"github.com/blaisecz/health-insights/internal/pipeline"
	"github.com/blaisecz/health-insights/internal/publisher"
	"github.com/blaisecz/health-insights/internal/repository"
	"github.com/blaisecz/health-insights/internal/scheduler"
	"github.com/blaisecz/health-insights/internal/seed"
	"github.com/blaisecz/health-insights/internal/service"
	"github.com/blaisecz/health-insights/internal/source"
	"github.com/blaisecz/health-insights/internal/telemetry"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.OTELServiceName)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	}

	// Connect to database
	db, err := config.NewDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	loc := cfg.Location()

	// Initialize repositories
	sampleRepo := repository.NewSampleRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	if cfg.Seed {
		logger.Info("seeding database with sample data (SEED=true)")
		if err := seed.Run(ctx, sampleRepo, time.Now(), loc, rand.New(rand.NewSource(time.Now().UnixNano())), logger); err != nil {
			logger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	var src source.DataSource
	switch cfg.DataSource {
	case config.DataSourceHTTP:
		src = source.NewHTTPSource(cfg.HealthProviderURL, cfg.HealthProviderToken, logger)
		logger.Info("using HTTP health provider", zap.String("url", cfg.HealthProviderURL))
	default:
		src = source.NewStoreSource(sampleRepo)
	}

	// Collection pipeline
	recorder := metrics.NewRecorder()
	aggregator := pipeline.NewDailyAggregator(src, cfg.MaxInflightQueries, cfg.SourceQueryTimeout, recorder, logger)
	collector := pipeline.NewWindowCollector(aggregator,
		pipeline.WithDays(cfg.WindowDays),
		pipeline.WithDayConcurrency(cfg.DayConcurrency),
		pipeline.WithLocation(loc),
		pipeline.WithRecorder(recorder),
		pipeline.WithLogger(logger),
	)

	var kv cache.KV = cache.NewMemoryKV()
	if cfg.RedisAddr != "" {
		redisKV := cache.NewRedisKV(cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB))
		if err := redisKV.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, caching in memory", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		} else {
			kv = redisKV
		}
	}

	alerts := publisher.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaAlertTopic, logger)
	defer alerts.Close()

	// Initialize services
	healthService := service.NewHealthService(collector, cache.NewWindowCache(kv), settingsRepo, alerts, recorder, logger, loc)

	var sched *scheduler.Scheduler
	if cfg.SchedulerEnabled {
		settings, err := settingsRepo.Get(ctx)
		if err != nil {
			logger.Fatal("failed to load settings", zap.Error(err))
		}
		sched = scheduler.New(func(ctx context.Context) error {
			_, err := healthService.Refresh(ctx)
			return err
		}, settings.SyncFrequency.Interval(), logger)
		go sched.Run(ctx)
	}

	var rescheduler service.Rescheduler
	if sched != nil {
		rescheduler = sched
	}
	settingsService := service.NewSettingsService(settingsRepo, rescheduler, logger)
	sampleService := service.NewSampleService(sampleRepo, healthService, logger)

	// OpenAI client may be nil if not configured
	var insightsLLM llm.InsightsLLM
	if openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel); openaiClient != nil {
		if cfg.LangfusePromptName != "" || cfg.InsightsPromptPath != "" {
			prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
				BaseURL:     cfg.LangfuseBaseURL,
				PublicKey:   cfg.LangfusePublicKey,
				SecretKey:   cfg.LangfuseSecretKey,
				PromptName:  cfg.LangfusePromptName,
				PromptLabel: cfg.LangfusePromptLabel,
				SavePath:    cfg.InsightsPromptPath,
			}, logger)
			if err != nil {
				logger.Warn("using built-in insights prompt", zap.Error(err))
			}
			openaiClient.WithSystemPrompt(prompt)
		}
		insightsLLM = openaiClient
	} else {
		logger.Warn("OpenAI API key not configured, insights will not include a narrative")
	}

	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}, logger)

	insightsService := service.NewInsightsService(healthService, settingsRepo, insightsLLM, langfuseClient, logger)

	// Initialize handlers
	recordsHandler := handler.NewRecordsHandler(healthService)
	sampleHandler := handler.NewSampleHandler(sampleService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	insightsHandler := handler.NewInsightsHandler(insightsService, langfuseClient, logger)

	// Setup router
	router := api.NewRouter(recordsHandler, sampleHandler, settingsHandler, insightsHandler, recorder, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if f, ok := langfuseClient.(interface{ Flush() }); ok {
		f.Flush()
	}
	if shutdownTracer != nil {
		if err := shutdownTracer(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown failed", zap.Error(err))
		}
	}
}
