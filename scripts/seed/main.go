package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/blaisecz/health-insights/internal/config"
	"github.com/blaisecz/health-insights/internal/logging"
	"github.com/blaisecz/health-insights/internal/repository"
	"github.com/blaisecz/health-insights/internal/seed"
	"go.uber.org/zap"
)

func main() {
	rngSeed := flag.Int64("rand-seed", time.Now().UnixNano(), "seed for the synthetic data generator")
	flag.Parse()

	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, "health-insights-seed")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.NewDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	repo := repository.NewSampleRepository(db)
	if err := seed.Run(ctx, repo, time.Now(), cfg.Location(), rand.New(rand.NewSource(*rngSeed)), logger); err != nil {
		logger.Fatal("failed to seed database", zap.Error(err))
	}
}
