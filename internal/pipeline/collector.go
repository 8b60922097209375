package pipeline

import (
	"context"
	"sort"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/internal/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultWindowDays is the lookback: today and the 29 days before it.
	DefaultWindowDays = 30
	// DefaultDayConcurrency runs every day of the default window at once.
	DefaultDayConcurrency = DefaultWindowDays
)

// WindowCollector aggregates every day of the lookback window concurrently and
// annotates the result with baselines and anomaly flags.
type WindowCollector struct {
	aggregator     Aggregator
	days           int
	dayConcurrency int
	location       *time.Location
	now            func() time.Time
	recorder       *metrics.Recorder
	logger         *zap.Logger
	tracer         trace.Tracer
}

// CollectorOption configures a WindowCollector.
type CollectorOption func(*WindowCollector)

// WithDays sets the window length.
func WithDays(days int) CollectorOption {
	return func(c *WindowCollector) {
		if days > 0 {
			c.days = days
		}
	}
}

// WithDayConcurrency bounds how many days are aggregated at once.
func WithDayConcurrency(n int) CollectorOption {
	return func(c *WindowCollector) {
		if n > 0 {
			c.dayConcurrency = n
		}
	}
}

// WithLocation sets the calendar used for day boundaries.
func WithLocation(loc *time.Location) CollectorOption {
	return func(c *WindowCollector) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) CollectorOption {
	return func(c *WindowCollector) {
		if now != nil {
			c.now = now
		}
	}
}

// WithRecorder attaches Prometheus instrumentation.
func WithRecorder(r *metrics.Recorder) CollectorOption {
	return func(c *WindowCollector) {
		c.recorder = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) CollectorOption {
	return func(c *WindowCollector) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewWindowCollector creates a WindowCollector.
func NewWindowCollector(aggregator Aggregator, opts ...CollectorOption) *WindowCollector {
	c := &WindowCollector{
		aggregator:     aggregator,
		days:           DefaultWindowDays,
		dayConcurrency: DefaultDayConcurrency,
		location:       time.UTC,
		now:            time.Now,
		logger:         zap.NewNop(),
		tracer:         otel.Tracer("health-insights/pipeline"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Days returns the window length.
func (c *WindowCollector) Days() int {
	return c.days
}

// Collect builds the date-ascending window ending today. It waits for every
// day; if ctx is cancelled it returns ctx's error and no records.
func (c *WindowCollector) Collect(ctx context.Context) ([]domain.DailyRecord, error) {
	started := time.Now()
	today := StartOfDay(c.now(), c.location)

	ctx, span := c.tracer.Start(ctx, "WindowCollector.Collect",
		trace.WithAttributes(
			attribute.String("window.end", today.Format("2006-01-02")),
			attribute.Int("window.days", c.days),
		),
	)
	defer span.End()

	// One slot per day, oldest first; each task writes only its own slot.
	records := make([]domain.DailyRecord, c.days)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.dayConcurrency)
	for slot := range records {
		dayStart := today.AddDate(0, 0, slot-(c.days-1))
		g.Go(func() error {
			rec, err := c.aggregator.Aggregate(gctx, dayStart)
			if err != nil {
				return err
			}
			records[slot] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "collection aborted")
		c.recorder.ObserveCollection(time.Since(started), err)
		c.logger.Warn("window collection aborted", zap.Error(err))
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	annotated := DetectAnomalies(records)

	elapsed := time.Since(started)
	c.recorder.ObserveCollection(elapsed, nil)
	c.logger.Info("window collected",
		zap.Int("days", len(annotated)),
		zap.Duration("elapsed", elapsed),
	)
	return annotated, nil
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
