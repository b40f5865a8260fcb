package window

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/heatwave-audio/attribution-engine/internal/adapter"
	"github.com/heatwave-audio/attribution-engine/internal/domain"
	"github.com/heatwave-audio/attribution-engine/internal/logger"
	"github.com/heatwave-audio/attribution-engine/internal/store"
	"github.com/heatwave-audio/attribution-engine/internal/store/schema"
)

// Manager is the authoritative state machine for attribution windows.
// Windows open active and expire only through time; there is no manual
// cancel here. GetActiveWindow never trusts the stored status alone - it
// re-checks window_end against the clock on every call, so settlement
// correctness does not depend on sweep timing.
//
//go:generate mockgen -source=manager.go -destination=../mocks/window_manager.go -package=mocks -mock_names=Manager=MockWindowManager
type Manager interface {
	// CreateWindow opens a window for (artist, spike) starting at start and
	// returns the new window's ID. Deliberately does not check for an
	// existing active window for the same artist; GetActiveWindow resolves
	// overlaps by preferring the most recently created window.
	CreateWindow(ctx context.Context, artistID, heatSpikeID, providerUserID int64, start time.Time) (int64, error)

	// NewWindow builds an unsaved window row with the configured length, for
	// callers that persist it atomically together with its owning spike
	NewWindow(artistID, providerUserID int64, start time.Time) *schema.AttributionWindow

	// GetActiveWindow returns the artist's currently active window, or nil
	// when none qualifies. A stored 'active' row past its window_end is
	// treated as inactive even before the expiry sweep has run.
	GetActiveWindow(ctx context.Context, artistID int64) (*schema.AttributionWindow, error)

	// ExpireOldWindows transitions all overdue windows to expired and returns
	// the number of rows changed. Idempotent; safe to run repeatedly.
	ExpireOldWindows(ctx context.Context) (int64, error)

	// ProviderStatistics aggregates a provider's windows and settlements
	ProviderStatistics(ctx context.Context, providerUserID int64) (*domain.ProviderStatistics, error)
}

type manager struct {
	store        store.Store
	clock        adapter.Clock
	windowLength time.Duration
}

// NewManager creates a window manager with the configured window length
// (90 days in production)
func NewManager(st store.Store, clock adapter.Clock, windowLength time.Duration) Manager {
	return &manager{
		store:        st,
		clock:        clock,
		windowLength: windowLength,
	}
}

// NewWindow builds an unsaved window row with the configured length
func (m *manager) NewWindow(artistID, providerUserID int64, start time.Time) *schema.AttributionWindow {
	return &schema.AttributionWindow{
		ArtistID:       artistID,
		ProviderUserID: providerUserID,
		WindowStart:    start,
		WindowEnd:      start.Add(m.windowLength),
		Status:         domain.WindowStatusActive,
	}
}

// CreateWindow opens a window for (artist, spike) starting at start
func (m *manager) CreateWindow(ctx context.Context, artistID, heatSpikeID, providerUserID int64, start time.Time) (int64, error) {
	w := m.NewWindow(artistID, providerUserID, start)
	w.HeatSpikeID = heatSpikeID

	if err := m.store.CreateAttributionWindow(ctx, w); err != nil {
		return 0, fmt.Errorf("failed to create window for artist %d: %w", artistID, err)
	}

	logger.InfoCtx(ctx, "Attribution window opened",
		zap.Int64("window_id", w.ID),
		zap.Int64("artist_id", artistID),
		zap.Int64("heat_spike_id", heatSpikeID),
		zap.Time("window_end", w.WindowEnd),
	)

	return w.ID, nil
}

// GetActiveWindow returns the artist's currently active window, or nil
func (m *manager) GetActiveWindow(ctx context.Context, artistID int64) (*schema.AttributionWindow, error) {
	w, err := m.store.GetActiveWindow(ctx, artistID, m.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to get active window for artist %d: %w", artistID, err)
	}
	return w, nil
}

// ExpireOldWindows transitions all overdue windows to expired
func (m *manager) ExpireOldWindows(ctx context.Context) (int64, error) {
	count, err := m.store.ExpireWindowsBefore(ctx, m.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to expire windows: %w", err)
	}
	return count, nil
}

// ProviderStatistics aggregates a provider's windows and settlements
func (m *manager) ProviderStatistics(ctx context.Context, providerUserID int64) (*domain.ProviderStatistics, error) {
	stats, err := m.store.GetProviderStatistics(ctx, providerUserID, m.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to get provider statistics: %w", err)
	}
	return stats, nil
}
