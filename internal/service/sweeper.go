package service

import (
	"context"
	"log/slog"
	"time"
)

type shipSweeper interface {
	SweepShipped(ctx context.Context) (int64, error)
}

// Sweeper periodically advances Placed orders to Shipped, so statuses stay
// fresh even when nobody reads them.
type Sweeper struct {
	logger   *slog.Logger
	svc      shipSweeper
	interval time.Duration
}

func NewSweeper(logger *slog.Logger, svc shipSweeper, interval time.Duration) *Sweeper {
	return &Sweeper{
		logger:   logger.With(slog.String("service", "sweeper")),
		svc:      svc,
		interval: interval,
	}
}

// Start runs one sweep synchronously and then keeps sweeping in the
// background until ctx is done.
func (s *Sweeper) Start(ctx context.Context) error {
	if _, err := s.svc.SweepShipped(ctx); err != nil {
		return err
	}

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := s.svc.SweepShipped(ctx); err != nil {
					s.logger.Error("periodic sweep failed", slog.Any("error", err))
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}
