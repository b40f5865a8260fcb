package window_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatwave-audio/attribution-engine/internal/domain"
	"github.com/heatwave-audio/attribution-engine/internal/logger"
	"github.com/heatwave-audio/attribution-engine/internal/mocks"
	"github.com/heatwave-audio/attribution-engine/internal/store/schema"
	"github.com/heatwave-audio/attribution-engine/internal/window"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const windowLength = 90 * 24 * time.Hour

func setupTestManager(t *testing.T) (*mocks.MockStore, *mocks.MockClock, window.Manager, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	return st, clock, window.NewManager(st, clock, windowLength), ctrl
}

func TestNewWindow_NinetyDayLength(t *testing.T) {
	_, _, m, ctrl := setupTestManager(t)
	defer ctrl.Finish()

	start := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	w := m.NewWindow(1, 9, start)

	assert.Equal(t, int64(1), w.ArtistID)
	assert.Equal(t, int64(9), w.ProviderUserID)
	assert.Equal(t, start, w.WindowStart)
	assert.Equal(t, start.Add(windowLength), w.WindowEnd)
	assert.Equal(t, domain.WindowStatusActive, w.Status)
}

func TestCreateWindow(t *testing.T) {
	st, _, m, ctrl := setupTestManager(t)
	defer ctrl.Finish()

	ctx := context.Background()
	start := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	st.EXPECT().CreateAttributionWindow(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, w *schema.AttributionWindow) error {
			assert.Equal(t, int64(20), w.HeatSpikeID)
			assert.Equal(t, start.Add(windowLength), w.WindowEnd)
			w.ID = 42
			return nil
		})

	id, err := m.CreateWindow(ctx, 1, 20, 9, start)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestGetActiveWindow_ChecksClock(t *testing.T) {
	st, clock, m, ctrl := setupTestManager(t)
	defer ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	active := &schema.AttributionWindow{ID: 10, ArtistID: 1, Status: domain.WindowStatusActive}

	clock.EXPECT().Now().Return(now)
	st.EXPECT().GetActiveWindow(ctx, int64(1), now).Return(active, nil)

	w, err := m.GetActiveWindow(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, active, w)
}

func TestGetActiveWindow_NoneActive(t *testing.T) {
	st, clock, m, ctrl := setupTestManager(t)
	defer ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	clock.EXPECT().Now().Return(now)
	st.EXPECT().GetActiveWindow(ctx, int64(1), now).Return(nil, nil)

	w, err := m.GetActiveWindow(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestExpireOldWindows(t *testing.T) {
	st, clock, m, ctrl := setupTestManager(t)
	defer ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	clock.EXPECT().Now().Return(now)
	st.EXPECT().ExpireWindowsBefore(ctx, now).Return(int64(3), nil)

	count, err := m.ExpireOldWindows(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestProviderStatistics(t *testing.T) {
	st, clock, m, ctrl := setupTestManager(t)
	defer ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	stats := &domain.ProviderStatistics{
		ProviderUserID:         9,
		ActiveWindows:          2,
		UniqueArtists:          2,
		TotalBountiesTriggered: 5,
		TotalBountyAmount:      12550,
	}

	clock.EXPECT().Now().Return(now)
	st.EXPECT().GetProviderStatistics(ctx, int64(9), now).Return(stats, nil)

	got, err := m.ProviderStatistics(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}
