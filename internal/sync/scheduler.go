package sync

import (
	"context"
	"errors"
	"time"

	"golang.org/x/exp/slog"
)

// ErrInvalidInterval is returned by NewScheduler when asked to run on a
// non-positive interval.
var ErrInvalidInterval = errors.New("sync: interval must be positive")

// Scheduler drives the Reconciler on a fixed interval in the
// background. Its loop is cooperative: it stops as soon as ctx is
// cancelled, never mid-cycle.
type Scheduler struct {
	reconciler *Reconciler
	interval   time.Duration
	log        *slog.Logger
}

// NewScheduler builds a Scheduler bound to the given Reconciler.
func NewScheduler(r *Reconciler, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	return &Scheduler{reconciler: r, interval: interval, log: log}, nil
}

// Run blocks, firing one SyncAll cycle per tick until ctx is cancelled.
// A cycle that returns ErrSyncInProgress (a manual /sync overlapped
// this tick) or any other error is logged and swallowed; the loop
// always continues to the next tick.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info("scheduler: starting", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler: stopped")
			return
		case <-ticker.C:
			stats, err := s.reconciler.SyncAll(context.WithoutCancel(ctx))
			if err != nil {
				s.log.Warn("scheduler: sync failed", "err", err)
				continue
			}
			s.log.Info("scheduler: sync completed",
				"courses_pushed", stats.CoursesPushed,
				"courses_pulled", stats.CoursesPulled,
				"todos_pushed", stats.TodosPushed,
				"todos_pulled", stats.TodosPulled,
			)
		}
	}
}
