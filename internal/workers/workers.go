package workers

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers wires every server-side worker.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewTokenCleanup(storages.RefreshTokenRepository, cfg.TokenCleanupInterval, logger),
		},
	}
}

// Run starts all workers concurrently and waits for them to stop. The first
// worker error cancels the rest.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}

// TokenCleanup periodically purges refresh-token rows that are past their
// expiry. Revoked rows are removed by logout and rotation already.
type TokenCleanup struct {
	tokens   store.RefreshTokenRepository
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewTokenCleanup(tokens store.RefreshTokenRepository, interval time.Duration, logger *logger.Logger) *TokenCleanup {
	if interval <= 0 {
		interval = config.DefaultTokenCleanupInterval
	}
	return &TokenCleanup{
		tokens:   tokens,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run purges once right away and then on every tick. A failed purge is
// logged and retried on the next tick.
func (c *TokenCleanup) Run(ctx context.Context) error {
	c.logger.Info().Dur("interval", c.interval).Msg("token cleanup worker started")

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		c.purge(ctx)

		select {
		case <-ctx.Done():
			c.logger.Info().Msg("token cleanup worker stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (c *TokenCleanup) purge(ctx context.Context) {
	deleted, err := c.tokens.DeleteExpired(ctx, c.now())
	if err != nil {
		if ctx.Err() == nil {
			c.logger.Err(err).Str("func", "*TokenCleanup.purge").Msg("error purging expired refresh tokens")
		}
		return
	}
	if deleted > 0 {
		c.logger.Debug().Int64("deleted", deleted).Msg("expired refresh tokens purged")
	}
}
