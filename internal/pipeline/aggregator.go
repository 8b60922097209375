// Package pipeline turns raw provider samples into annotated daily records:
// per-day aggregation, window collection, rolling baselines and anomaly
// detection.
package pipeline

import (
	"context"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/internal/metrics"
	"github.com/blaisecz/health-insights/internal/source"
	"github.com/blaisecz/health-insights/pkg/optional"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Aggregator builds the record of a single day.
type Aggregator interface {
	Aggregate(ctx context.Context, dayStart time.Time) (domain.DailyRecord, error)
}

// DailyAggregator fans out one query per metric for a day and joins the
// results into a DailyRecord.
type DailyAggregator struct {
	source       source.DataSource
	limiter      *semaphore.Weighted
	queryTimeout time.Duration
	recorder     *metrics.Recorder
	logger       *zap.Logger
	tracer       trace.Tracer
}

// NewDailyAggregator creates a DailyAggregator. maxInflight bounds concurrent
// source queries across every day sharing this aggregator (0 means unbounded).
// queryTimeout is applied to each source call (0 disables it).
func NewDailyAggregator(src source.DataSource, maxInflight int64, queryTimeout time.Duration, recorder *metrics.Recorder, logger *zap.Logger) *DailyAggregator {
	var limiter *semaphore.Weighted
	if maxInflight > 0 {
		limiter = semaphore.NewWeighted(maxInflight)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DailyAggregator{
		source:       src,
		limiter:      limiter,
		queryTimeout: queryTimeout,
		recorder:     recorder,
		logger:       logger,
		tracer:       otel.Tracer("health-insights/pipeline"),
	}
}

// Aggregate collects every metric for [dayStart, next day). A failed metric
// becomes no value; only cancellation of ctx fails the whole record, in which
// case nothing is returned.
func (a *DailyAggregator) Aggregate(ctx context.Context, dayStart time.Time) (domain.DailyRecord, error) {
	ctx, span := a.tracer.Start(ctx, "DailyAggregator.Aggregate",
		trace.WithAttributes(attribute.String("day", dayStart.Format("2006-01-02"))),
	)
	defer span.End()

	dayEnd := dayStart.AddDate(0, 0, 1)

	// Each sub-fetch owns exactly one of these until Wait returns.
	var hrv, restingHR, temperature, respiratory, strain optional.Value[float64]
	var sleep optional.Value[domain.SleepMetrics]

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.average(gctx, domain.MetricHRV, dayStart, dayEnd, &hrv)
	})
	g.Go(func() error {
		return a.average(gctx, domain.MetricRestingHeartRate, dayStart, dayEnd, &restingHR)
	})
	g.Go(func() error {
		return a.average(gctx, domain.MetricWristTemperature, dayStart, dayEnd, &temperature)
	})
	g.Go(func() error {
		return a.average(gctx, domain.MetricRespiratoryRate, dayStart, dayEnd, &respiratory)
	})
	g.Go(func() error {
		events, err := a.sleepStages(gctx, dayStart, dayEnd)
		if err != nil {
			return err
		}
		sleep = ReduceSleepStages(events)
		return nil
	})
	g.Go(func() error {
		var avgHR optional.Value[float64]
		if err := a.average(gctx, domain.MetricHeartRate, dayStart, dayEnd, &avgHR); err != nil {
			return err
		}
		strain = EstimateStrain(avgHR)
		return nil
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "aggregation cancelled")
		return domain.DailyRecord{}, err
	}

	return domain.DailyRecord{
		Date:             dayStart,
		HRV:              hrv,
		RestingHR:        restingHR,
		TemperatureDelta: temperature,
		RespiratoryRate:  respiratory,
		Sleep:            sleep,
		Strain:           strain,
	}, nil
}

// average runs one FetchAverage query. Source errors are logged and leave out
// untouched; only a cancelled ctx is returned.
func (a *DailyAggregator) average(ctx context.Context, metric domain.Metric, start, end time.Time, out *optional.Value[float64]) error {
	release, err := a.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	qctx, cancel := a.queryContext(ctx)
	defer cancel()

	v, err := a.source.FetchAverage(qctx, metric, start, end)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		a.degraded(string(metric), start, err)
		return nil
	}
	*out = v
	return nil
}

// sleepStages runs the stage query with the same degradation rules as average.
func (a *DailyAggregator) sleepStages(ctx context.Context, start, end time.Time) ([]domain.StageEvent, error) {
	release, err := a.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	qctx, cancel := a.queryContext(ctx)
	defer cancel()

	events, err := a.source.FetchSleepStages(qctx, start, end)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		a.degraded("sleep_analysis", start, err)
		return nil, nil
	}
	return events, nil
}

func (a *DailyAggregator) acquire(ctx context.Context) (func(), error) {
	if a.limiter == nil {
		return func() {}, ctx.Err()
	}
	if err := a.limiter.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return func() { a.limiter.Release(1) }, nil
}

func (a *DailyAggregator) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, a.queryTimeout)
}

func (a *DailyAggregator) degraded(metric string, day time.Time, err error) {
	a.recorder.FetchFailed(metric)
	a.logger.Warn("source query failed, using no value",
		zap.String("metric", metric),
		zap.String("day", day.Format("2006-01-02")),
		zap.Error(err),
	)
}
