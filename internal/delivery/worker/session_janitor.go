// Package worker contains background deliveries that run alongside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"gatehouse/config"
	"gatehouse/internal/delivery"
	"gatehouse/internal/domain/lifecycle"
	"gatehouse/internal/usecase"

	"go.uber.org/fx"
)

// JanitorParams holds dependencies for the session janitor.
type JanitorParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Sessions usecase.SessionUsecase
}

// sessionJanitor periodically purges expired session rows.
type sessionJanitor struct {
	sessions usecase.SessionUsecase
	interval time.Duration
	logger   *slog.Logger
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewSessionJanitor creates the janitor. A non-positive cleanup interval disables it.
func NewSessionJanitor(params JanitorParams) delivery.Delivery {
	j := newSessionJanitor(params.Sessions, params.Cfg.Session.CleanupInterval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: j.stop,
	})

	return j
}

func newSessionJanitor(sessions usecase.SessionUsecase, interval time.Duration, logger *slog.Logger) *sessionJanitor {
	return &sessionJanitor{
		sessions: sessions,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Serve runs until ctx is cancelled or the application stops.
func (j *sessionJanitor) Serve(ctx context.Context) error {
	defer close(j.doneCh)

	if j.interval <= 0 {
		j.logger.Info("Session janitor disabled")

		return nil
	}

	j.logger.Info("Starting session janitor", slog.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.stopCh:
			return nil
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *sessionJanitor) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if _, err := j.sessions.CleanupExpiredSessions(sweepCtx); err != nil {
		j.logger.Error("Failed to clean up expired sessions", slog.Any("error", err))
	}
}

// stop signals Serve and waits for an in-flight sweep to finish.
func (j *sessionJanitor) stop(ctx context.Context) error {
	close(j.stopCh)

	select {
	case <-j.doneCh:
	case <-ctx.Done():
	}

	j.logger.Info("Session janitor stopped")

	return nil
}
