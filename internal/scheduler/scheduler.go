// Package scheduler periodically re-runs window collection at the user's
// sync frequency.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RefreshFunc recollects the window.
type RefreshFunc func(ctx context.Context) error

// Scheduler calls a RefreshFunc on a ticker whose period can change while it
// runs.
type Scheduler struct {
	refresh  RefreshFunc
	interval time.Duration
	reset    chan time.Duration
	logger   *zap.Logger
}

// New creates a Scheduler that fires every interval once started.
func New(refresh RefreshFunc, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		refresh:  refresh,
		interval: interval,
		reset:    make(chan time.Duration, 1),
		logger:   logger.With(zap.String("component", "scheduler")),
	}
}

// Run blocks until ctx is done. Refresh errors are logged, not returned.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case d := <-s.reset:
			ticker.Reset(d)
			s.logger.Info("scheduler rescheduled", zap.Duration("interval", d))
		case <-ticker.C:
			if err := s.refresh(ctx); err != nil && ctx.Err() == nil {
				s.logger.Warn("scheduled refresh failed", zap.Error(err))
			}
		}
	}
}

// Reschedule changes the period. A pending change not yet applied is
// replaced.
func (s *Scheduler) Reschedule(interval time.Duration) {
	if interval <= 0 {
		return
	}
	for {
		select {
		case s.reset <- interval:
			return
		default:
		}
		select {
		case <-s.reset:
		default:
		}
	}
}
