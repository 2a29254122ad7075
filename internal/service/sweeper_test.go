package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	calls atomic.Int64
	err   error
}

func (s *countingSweeper) SweepShipped(context.Context) (int64, error) {
	s.calls.Add(1)
	return 0, s.err
}

func TestSweeper_Start(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("sweeps immediately and then periodically", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		svc := &countingSweeper{}
		require.NoError(t, service.NewSweeper(logger, svc, 10*time.Millisecond).Start(ctx))
		assert.GreaterOrEqual(t, svc.calls.Load(), int64(1))

		assert.Eventually(t, func() bool { return svc.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	})

	t.Run("first sweep failure is returned", func(t *testing.T) {
		sweepErr := errors.New("db down")
		svc := &countingSweeper{err: sweepErr}

		err := service.NewSweeper(logger, svc, time.Hour).Start(context.Background())
		assert.ErrorIs(t, err, sweepErr)
		assert.Equal(t, int64(1), svc.calls.Load())
	})
}
