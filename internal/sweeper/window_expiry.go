package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/heatwave-audio/attribution-engine/internal/adapter"
	"github.com/heatwave-audio/attribution-engine/internal/logger"
	"github.com/heatwave-audio/attribution-engine/internal/window"
)

// WindowExpiryConfig holds configuration for the window expiry sweeper
type WindowExpiryConfig struct {
	// Interval is the time between sweep cycles
	Interval time.Duration
}

// windowExpirySweeper periodically transitions overdue attribution windows
// to expired. The sweep is idempotent, so missed or overlapping runs
// self-correct - settlement never depends on it because the active-window
// lookup re-checks window_end on every call.
type windowExpirySweeper struct {
	config    WindowExpiryConfig
	windows   window.Manager
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewWindowExpirySweeper creates a window expiry sweeper
func NewWindowExpirySweeper(cfg WindowExpiryConfig, windows window.Manager, clock adapter.Clock) Sweeper {
	return &windowExpirySweeper{
		config:    cfg,
		windows:   windows,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *windowExpirySweeper) Name() string {
	return "window-expiry-sweeper"
}

// Start runs the sweep loop until the context is cancelled or Stop is called
func (s *windowExpirySweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting window expiry sweeper",
		zap.Duration("interval", s.config.Interval),
	)

	// Sweep immediately on startup, then on the interval
	s.runSweepCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Window expiry sweeper stopping", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Window expiry sweeper stop requested")
			return nil
		case <-s.clock.After(s.config.Interval):
			s.runSweepCycle(ctx)
		}
	}
}

// runSweepCycle runs one expiry pass. Each cycle carries a ULID so
// overlapping runs can be told apart in logs.
func (s *windowExpirySweeper) runSweepCycle(ctx context.Context) {
	cycleID := ulid.Make().String()
	start := s.clock.Now()

	expired, err := s.windows.ExpireOldWindows(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err, zap.String("cycle_id", cycleID))
		}
		return
	}

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.String("cycle_id", cycleID),
		zap.Int64("windows_expired", expired),
		zap.Duration("duration", s.clock.Since(start)),
	)
}

// Stop gracefully stops the sweeper, respecting the context deadline
func (s *windowExpirySweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("timed out waiting for sweeper to stop: %w", ctx.Err())
	}
}
