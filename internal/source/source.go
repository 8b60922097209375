// Package source defines the boundary to the external health-data provider and
// its implementations.
package source

import (
	"context"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/pkg/optional"
)

// DataSource answers read-only queries over half-open intervals [start, end).
type DataSource interface {
	// FetchAverage returns the mean of metric over the interval, absent when no
	// samples exist.
	FetchAverage(ctx context.Context, metric domain.Metric, start, end time.Time) (optional.Value[float64], error)
	// FetchSleepStages returns the interval's sleep segments ordered by end time,
	// most recent first.
	FetchSleepStages(ctx context.Context, start, end time.Time) ([]domain.StageEvent, error)
}
