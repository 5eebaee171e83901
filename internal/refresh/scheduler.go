// Package refresh periodically replaces the sales dataset with a fresh
// generator run.
package refresh

import (
	"context"
	"log/slog"
	"time"

	"github.com/aevon-lab/salescope/internal/telemetry"
)

const jobName = "regenerate_sales"

// Regenerator rebuilds the sales dataset and reports how many records it wrote.
// *inventory.Store satisfies it.
type Regenerator interface {
	RegenerateSales(ctx context.Context) (int, error)
}

// Scheduler runs sales regeneration on a fixed interval.
type Scheduler struct {
	interval time.Duration
	timeout  time.Duration
	target   Regenerator
	metrics  *telemetry.JobMetrics
}

// NewScheduler creates a scheduler. An interval <= 0 disables it.
// Each run is bounded by the interval itself. metrics may be nil.
func NewScheduler(interval time.Duration, target Regenerator, metrics *telemetry.JobMetrics) *Scheduler {
	if target == nil {
		panic("refresh: regenerator must not be nil")
	}
	return &Scheduler{
		interval: interval,
		timeout:  interval,
		target:   target,
		metrics:  metrics,
	}
}

// Enabled reports whether Start will tick at all.
func (s *Scheduler) Enabled() bool {
	return s.interval > 0
}

// Start regenerates sales every interval until ctx is cancelled.
// It returns nil immediately when the scheduler is disabled.
func (s *Scheduler) Start(ctx context.Context) error {
	if !s.Enabled() {
		slog.Info("[Refresh] Periodic sales regeneration disabled")
		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("[Refresh] Starting sales regeneration scheduler", "interval", s.interval)

	for {
		select {
		case <-ticker.C:
			s.RunOnce(ctx)
		case <-ctx.Done():
			slog.Info("[Refresh] Stopping (context cancelled)")
			return nil
		}
	}
}

// RunOnce performs a single regeneration and records its outcome.
// Failures are logged and counted; the next tick tries again.
func (s *Scheduler) RunOnce(ctx context.Context) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	n, err := s.target.RegenerateSales(ctx)
	elapsed := time.Since(start)
	s.metrics.ObserveDuration(jobName, elapsed)

	if err != nil {
		s.metrics.IncFailure(jobName)
		slog.Error("[Refresh] Sales regeneration failed", "error", err, "duration", elapsed)
		return
	}

	s.metrics.IncSuccess(jobName, n)
	slog.Info("[Refresh] Sales dataset regenerated", "records", n, "duration", elapsed)
}
