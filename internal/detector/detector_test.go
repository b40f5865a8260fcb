package detector_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatwave-audio/attribution-engine/internal/detector"
	"github.com/heatwave-audio/attribution-engine/internal/domain"
	"github.com/heatwave-audio/attribution-engine/internal/logger"
	"github.com/heatwave-audio/attribution-engine/internal/mocks"
	"github.com/heatwave-audio/attribution-engine/internal/store"
	"github.com/heatwave-audio/attribution-engine/internal/store/schema"
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

// testDetectorMocks contains all the mocks needed for testing the detector
type testDetectorMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	ledger   *mocks.MockIntegrityLedger
	windows  *mocks.MockWindowManager
	clock    *mocks.MockClock
	detector detector.Detector
}

const baselinePeriod = 90 * 24 * time.Hour

// setupTestDetector creates all the mocks and detector for testing
func setupTestDetector(t *testing.T) *testDetectorMocks {
	ctrl := gomock.NewController(t)

	tm := &testDetectorMocks{
		ctrl:    ctrl,
		store:   mocks.NewMockStore(ctrl),
		ledger:  mocks.NewMockIntegrityLedger(ctrl),
		windows: mocks.NewMockWindowManager(ctrl),
		clock:   mocks.NewMockClock(ctrl),
	}

	tm.detector = detector.NewDetector(
		detector.Config{
			SpikeThreshold: 2.00,
			BaselinePeriod: baselinePeriod,
		},
		tm.store,
		tm.ledger,
		tm.windows,
		tm.clock,
	)

	return tm
}

func tearDownTestDetector(tm *testDetectorMocks) {
	tm.ctrl.Finish()
}

var detectNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

// testUpload covers one week so baseline totals scale by 7/90
func testUpload() *schema.Upload {
	return &schema.Upload{
		ID:             1,
		ProviderUserID: 9,
		PeriodStart:    detectNow.AddDate(0, 0, -7),
		PeriodEnd:      detectNow,
	}
}

func TestDetectSpikes_SpikeAboveThreshold(t *testing.T) {
	tm := setupTestDetector(t)
	defer tearDownTestDetector(tm)

	ctx := context.Background()
	upload := testUpload()

	tm.ledger.EXPECT().IsTainted(ctx, int64(1)).Return(false, nil)
	tm.store.EXPECT().GetUpload(ctx, int64(1)).Return(upload, nil)
	tm.store.EXPECT().GetUploadSpinGroups(ctx, int64(1)).Return([]store.UploadSpinGroup{
		{ArtistID: 5, StationID: 100, ZipCode: "30318", Spins: 150},
		{ArtistID: 5, StationID: 101, ZipCode: "30309", Spins: 100},
	}, nil)

	// Trailing 90-day total of ~1286 scales to a one-week baseline of 100
	from := upload.PeriodStart.Add(-baselinePeriod)
	tm.store.EXPECT().GetArtistSpinTotal(ctx, int64(5), from, upload.PeriodStart, int64(1)).Return(int64(1286), nil)

	tm.clock.EXPECT().Now().Return(detectNow)
	tm.windows.EXPECT().NewWindow(int64(5), int64(9), detectNow).Return(&schema.AttributionWindow{
		ArtistID:       5,
		ProviderUserID: 9,
		WindowStart:    detectNow,
		WindowEnd:      detectNow.Add(90 * 24 * time.Hour),
		Status:         domain.WindowStatusActive,
	})
	tm.store.EXPECT().CreateHeatSpikeWithWindow(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spike *schema.HeatSpike, win *schema.AttributionWindow) error {
			spike.ID = 77
			win.ID = 88
			win.HeatSpikeID = 77
			return nil
		})

	results, err := tm.detector.DetectSpikesFromUpload(ctx, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, int64(77), r.HeatSpikeID)
	assert.Equal(t, int64(88), r.AttributionWindowID)
	assert.Equal(t, int64(5), r.ArtistID)
	assert.Equal(t, int64(100), r.BaselineSpins)
	assert.Equal(t, int64(250), r.SpikeSpins)
	assert.Equal(t, 2.50, r.SpikeMultiplier)
	assert.Equal(t, 2, r.StationsCount)
	assert.Equal(t, []string{"30309", "30318"}, r.ZipCodes)
	assert.Equal(t, upload.PeriodStart, r.SpikeStart)
	assert.Equal(t, upload.PeriodEnd, r.SpikeEnd)
}

func TestDetectSpikes_BelowThresholdSkipped(t *testing.T) {
	tm := setupTestDetector(t)
	defer tearDownTestDetector(tm)

	ctx := context.Background()
	upload := testUpload()

	tm.ledger.EXPECT().IsTainted(ctx, int64(1)).Return(false, nil)
	tm.store.EXPECT().GetUpload(ctx, int64(1)).Return(upload, nil)
	tm.store.EXPECT().GetUploadSpinGroups(ctx, int64(1)).Return([]store.UploadSpinGroup{
		{ArtistID: 5, StationID: 100, ZipCode: "30318", Spins: 150},
	}, nil)

	// One-week baseline of 100 against 150 spins is a 1.50 multiplier
	from := upload.PeriodStart.Add(-baselinePeriod)
	tm.store.EXPECT().GetArtistSpinTotal(ctx, int64(5), from, upload.PeriodStart, int64(1)).Return(int64(1286), nil)
	tm.clock.EXPECT().Now().Return(detectNow)

	results, err := tm.detector.DetectSpikesFromUpload(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDetectSpikes_ExactThresholdMatches(t *testing.T) {
	tm := setupTestDetector(t)
	defer tearDownTestDetector(tm)

	ctx := context.Background()
	upload := testUpload()

	tm.ledger.EXPECT().IsTainted(ctx, int64(1)).Return(false, nil)
	tm.store.EXPECT().GetUpload(ctx, int64(1)).Return(upload, nil)
	tm.store.EXPECT().GetUploadSpinGroups(ctx, int64(1)).Return([]store.UploadSpinGroup{
		{ArtistID: 5, StationID: 100, ZipCode: "30318", Spins: 200},
	}, nil)

	from := upload.PeriodStart.Add(-baselinePeriod)
	tm.store.EXPECT().GetArtistSpinTotal(ctx, int64(5), from, upload.PeriodStart, int64(1)).Return(int64(1286), nil)

	tm.clock.EXPECT().Now().Return(detectNow)
	tm.windows.EXPECT().NewWindow(int64(5), int64(9), detectNow).Return(&schema.AttributionWindow{})
	tm.store.EXPECT().CreateHeatSpikeWithWindow(ctx, gomock.Any(), gomock.Any()).Return(nil)

	results, err := tm.detector.DetectSpikesFromUpload(ctx, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2.00, results[0].SpikeMultiplier)
}

func TestDetectSpikes_TaintedUploadHardGate(t *testing.T) {
	tm := setupTestDetector(t)
	defer tearDownTestDetector(tm)

	ctx := context.Background()

	tm.ledger.EXPECT().IsTainted(ctx, int64(1)).Return(true, nil)

	results, err := tm.detector.DetectSpikesFromUpload(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDetectSpikes_ColdStartAutoMatch(t *testing.T) {
	tm := setupTestDetector(t)
	defer tearDownTestDetector(tm)

	ctx := context.Background()
	upload := testUpload()

	tm.ledger.EXPECT().IsTainted(ctx, int64(1)).Return(false, nil)
	tm.store.EXPECT().GetUpload(ctx, int64(1)).Return(upload, nil)
	tm.store.EXPECT().GetUploadSpinGroups(ctx, int64(1)).Return([]store.UploadSpinGroup{
		{ArtistID: 5, StationID: 100, ZipCode: "30318", Spins: 40},
	}, nil)

	from := upload.PeriodStart.Add(-baselinePeriod)
	tm.store.EXPECT().GetArtistSpinTotal(ctx, int64(5), from, upload.PeriodStart, int64(1)).Return(int64(0), nil)

	tm.clock.EXPECT().Now().Return(detectNow)
	tm.windows.EXPECT().NewWindow(int64(5), int64(9), detectNow).Return(&schema.AttributionWindow{})
	tm.store.EXPECT().CreateHeatSpikeWithWindow(ctx, gomock.Any(), gomock.Any()).Return(nil)

	results, err := tm.detector.DetectSpikesFromUpload(ctx, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)

	// No baseline to divide by: multiplier stays 0, any positive volume matches
	assert.Equal(t, int64(0), results[0].BaselineSpins)
	assert.Equal(t, float64(0), results[0].SpikeMultiplier)
	assert.Equal(t, int64(40), results[0].SpikeSpins)
}

func TestDetectSpikes_MultipleArtistsDeterministicOrder(t *testing.T) {
	tm := setupTestDetector(t)
	defer tearDownTestDetector(tm)

	ctx := context.Background()
	upload := testUpload()

	tm.ledger.EXPECT().IsTainted(ctx, int64(1)).Return(false, nil)
	tm.store.EXPECT().GetUpload(ctx, int64(1)).Return(upload, nil)
	tm.store.EXPECT().GetUploadSpinGroups(ctx, int64(1)).Return([]store.UploadSpinGroup{
		{ArtistID: 8, StationID: 100, ZipCode: "30318", Spins: 30},
		{ArtistID: 3, StationID: 101, ZipCode: "30309", Spins: 20},
	}, nil)

	from := upload.PeriodStart.Add(-baselinePeriod)
	tm.store.EXPECT().GetArtistSpinTotal(ctx, int64(3), from, upload.PeriodStart, int64(1)).Return(int64(0), nil)
	tm.store.EXPECT().GetArtistSpinTotal(ctx, int64(8), from, upload.PeriodStart, int64(1)).Return(int64(0), nil)

	tm.clock.EXPECT().Now().Return(detectNow)
	tm.windows.EXPECT().NewWindow(int64(3), int64(9), detectNow).Return(&schema.AttributionWindow{})
	tm.windows.EXPECT().NewWindow(int64(8), int64(9), detectNow).Return(&schema.AttributionWindow{})
	tm.store.EXPECT().CreateHeatSpikeWithWindow(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)

	results, err := tm.detector.DetectSpikesFromUpload(ctx, 1)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, int64(3), results[0].ArtistID)
	assert.Equal(t, int64(8), results[1].ArtistID)
}
