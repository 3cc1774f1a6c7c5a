package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
	"github.com/toolforge/tool-spacemedia-sub000/internal/engine"
)

// Harvester runs one source's harvest loop.
type Harvester interface {
	Run(ctx context.Context, opts engine.RunOptions) (*domain.RunSummary, error)
}

// Scheduler triggers every configured source at a fixed interval. Sources
// run sequentially within a tick; a failing source never stops the others.
type Scheduler struct {
	harvesters map[string]Harvester
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(harvesters map[string]Harvester, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		harvesters: harvesters,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "sources", len(s.harvesters))

	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	for key, h := range s.harvesters {
		if ctx.Err() != nil {
			return
		}
		runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
		if _, err := h.Run(runCtx, engine.RunOptions{}); err != nil {
			s.logger.Error("run failed", "source", key, "error", err)
		}
		cancel()
	}
}
