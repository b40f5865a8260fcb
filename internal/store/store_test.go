package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/heatwave-audio/attribution-engine/internal/domain"
	"github.com/heatwave-audio/attribution-engine/internal/store/schema"
)

// RunStoreTests runs the store test suite against the given store factory.
// Each subtest gets its own isolated store instance.
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	t.Run("CemeteryRecords", func(t *testing.T) { testCemeteryRecords(t, initDB(t)) })
	t.Run("UploadSpinAggregation", func(t *testing.T) { testUploadSpinAggregation(t, initDB(t)) })
	t.Run("ArtistSpinTotal", func(t *testing.T) { testArtistSpinTotal(t, initDB(t)) })
	t.Run("HeatSpikeWithWindow", func(t *testing.T) { testHeatSpikeWithWindow(t, initDB(t)) })
	t.Run("ActiveWindowLookup", func(t *testing.T) { testActiveWindowLookup(t, initDB(t)) })
	t.Run("WindowExpiry", func(t *testing.T) { testWindowExpiry(t, initDB(t)) })
	t.Run("BountyTransactions", func(t *testing.T) { testBountyTransactions(t, initDB(t)) })
	t.Run("BountyIDCollision", func(t *testing.T) { testBountyIDCollision(t, initDB(t)) })
	t.Run("VenuePostalCode", func(t *testing.T) { testVenuePostalCode(t, initDB(t)) })
	t.Run("ProviderStatistics", func(t *testing.T) { testProviderStatistics(t, initDB(t)) })
	t.Run("NotFoundMappings", func(t *testing.T) { testNotFoundMappings(t, initDB(t)) })
}

var storeTestNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func mustCreateUpload(t *testing.T, st Store, providerUserID int64, start, end time.Time) *schema.Upload {
	t.Helper()
	pg := st.(*pgStore)
	upload := &schema.Upload{
		ProviderUserID: providerUserID,
		PeriodStart:    start,
		PeriodEnd:      end,
	}
	require.NoError(t, pg.db.Create(upload).Error)
	return upload
}

func mustCreateSpin(t *testing.T, st Store, rec *schema.SpinRecord) {
	t.Helper()
	pg := st.(*pgStore)
	require.NoError(t, pg.db.Create(rec).Error)
}

// mustCreateSpike creates a minimal heat spike so windows can reference it
func mustCreateSpike(t *testing.T, st Store, artistID int64) int64 {
	t.Helper()
	pg := st.(*pgStore)
	spike := &schema.HeatSpike{
		ArtistID:       artistID,
		UploadID:       1,
		ProviderUserID: 9,
		DetectionDate:  storeTestNow,
		SpikeSpins:     100,
		ThresholdMet:   true,
		SpikeStartDate: storeTestNow.AddDate(0, 0, -7),
		SpikeEndDate:   storeTestNow,
		StationsCount:  1,
		ZipCodes:       datatypes.JSON(`["30318"]`),
	}
	require.NoError(t, pg.db.Create(spike).Error)
	return spike.ID
}

func testCemeteryRecords(t *testing.T, st Store) {
	ctx := context.Background()

	tainted, err := st.IsUploadTainted(ctx, 1)
	require.NoError(t, err)
	assert.False(t, tainted)

	rec, err := st.CreateCemeteryRecord(ctx, &schema.CemeteryRecord{
		UploadID:    1,
		FailureType: domain.FailureTypeDuplicateHash,
		DetectedBy:  "ingest-bridge",
	})
	require.NoError(t, err)
	require.NotZero(t, rec.ID)

	tainted, err = st.IsUploadTainted(ctx, 1)
	require.NoError(t, err)
	assert.True(t, tainted)

	// Flagging the same (upload, failure_type) again returns the original record
	again, err := st.CreateCemeteryRecord(ctx, &schema.CemeteryRecord{
		UploadID:    1,
		FailureType: domain.FailureTypeDuplicateHash,
		DetectedBy:  "fraud-ops",
	})
	require.NoError(t, err)
	assert.Equal(t, rec.ID, again.ID)
	assert.Equal(t, "ingest-bridge", again.DetectedBy)

	// A different failure type for the same upload is a new record
	other, err := st.CreateCemeteryRecord(ctx, &schema.CemeteryRecord{
		UploadID:    1,
		FailureType: domain.FailureTypeDisputedData,
		DetectedBy:  "fraud-ops",
	})
	require.NoError(t, err)
	assert.NotEqual(t, rec.ID, other.ID)
}

func testUploadSpinAggregation(t *testing.T, st Store) {
	ctx := context.Background()
	upload := mustCreateUpload(t, st, 9, storeTestNow.AddDate(0, 0, -7), storeTestNow)

	// Two rows for the same (artist, station, zip) must collapse into one group
	mustCreateSpin(t, st, &schema.SpinRecord{UploadID: upload.ID, ArtistID: 5, StationID: 100, ZipCode: "30318", Spins: 60, PlayedOn: storeTestNow.AddDate(0, 0, -6)})
	mustCreateSpin(t, st, &schema.SpinRecord{UploadID: upload.ID, ArtistID: 5, StationID: 100, ZipCode: "30318", Spins: 40, PlayedOn: storeTestNow.AddDate(0, 0, -5)})
	mustCreateSpin(t, st, &schema.SpinRecord{UploadID: upload.ID, ArtistID: 5, StationID: 101, ZipCode: "30309", Spins: 30, PlayedOn: storeTestNow.AddDate(0, 0, -4)})
	mustCreateSpin(t, st, &schema.SpinRecord{UploadID: upload.ID, ArtistID: 6, StationID: 100, ZipCode: "30318", Spins: 10, PlayedOn: storeTestNow.AddDate(0, 0, -4)})
	// A different upload's rows must not leak in
	mustCreateSpin(t, st, &schema.SpinRecord{UploadID: upload.ID + 1000, ArtistID: 5, StationID: 100, ZipCode: "30318", Spins: 99, PlayedOn: storeTestNow.AddDate(0, 0, -4)})

	groups, err := st.GetUploadSpinGroups(ctx, upload.ID)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	bySpins := make(map[int64]int64)
	for _, g := range groups {
		bySpins[g.ArtistID] += g.Spins
	}
	assert.Equal(t, int64(130), bySpins[5])
	assert.Equal(t, int64(10), bySpins[6])
}

func testArtistSpinTotal(t *testing.T, st Store) {
	ctx := context.Background()
	upload := mustCreateUpload(t, st, 9, storeTestNow.AddDate(0, 0, -7), storeTestNow)

	from := storeTestNow.AddDate(0, 0, -97)
	to := upload.PeriodStart

	// In range
	mustCreateSpin(t, st, &schema.SpinRecord{UploadID: 500, ArtistID: 5, StationID: 100, ZipCode: "30318", Spins: 70, PlayedOn: from.AddDate(0, 0, 1)})
	mustCreateSpin(t, st, &schema.SpinRecord{UploadID: 501, ArtistID: 5, StationID: 100, ZipCode: "30318", Spins: 30, PlayedOn: to.AddDate(0, 0, -1)})
	// Excluded upload's rows must not count toward its own baseline
	mustCreateSpin(t, st, &schema.SpinRecord{UploadID: upload.ID, ArtistID: 5, StationID: 100, ZipCode: "30318", Spins: 500, PlayedOn: to.AddDate(0, 0, -1)})
	// Outside range
	mustCreateSpin(t, st, &schema.SpinRecord{UploadID: 502, ArtistID: 5, StationID: 100, ZipCode: "30318", Spins: 40, PlayedOn: from.AddDate(0, 0, -1)})
	mustCreateSpin(t, st, &schema.SpinRecord{UploadID: 503, ArtistID: 5, StationID: 100, ZipCode: "30318", Spins: 40, PlayedOn: to})

	total, err := st.GetArtistSpinTotal(ctx, 5, from, to, upload.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), total)

	// No rows at all yields zero, not an error
	total, err = st.GetArtistSpinTotal(ctx, 999, from, to, upload.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func testHeatSpikeWithWindow(t *testing.T, st Store) {
	ctx := context.Background()

	spike := &schema.HeatSpike{
		ArtistID:        5,
		UploadID:        1,
		ProviderUserID:  9,
		DetectionDate:   storeTestNow,
		BaselineSpins:   100,
		SpikeSpins:      250,
		SpikeMultiplier: 2.50,
		ThresholdMet:    true,
		SpikeStartDate:  storeTestNow.AddDate(0, 0, -7),
		SpikeEndDate:    storeTestNow,
		StationsCount:   2,
		ZipCodes:        datatypes.JSON(`["30309","30318"]`),
	}
	win := &schema.AttributionWindow{
		ArtistID:       5,
		ProviderUserID: 9,
		WindowStart:    storeTestNow,
		WindowEnd:      storeTestNow.Add(90 * 24 * time.Hour),
		Status:         domain.WindowStatusActive,
	}

	require.NoError(t, st.CreateHeatSpikeWithWindow(ctx, spike, win))
	require.NotZero(t, spike.ID)
	require.NotZero(t, win.ID)
	assert.Equal(t, spike.ID, win.HeatSpikeID)

	got, err := st.GetHeatSpikeByID(ctx, spike.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.50, got.SpikeMultiplier)

	gotWin, err := st.GetWindowByID(ctx, win.ID)
	require.NoError(t, err)
	assert.Equal(t, spike.ID, gotWin.HeatSpikeID)

	spikes, err := st.ListHeatSpikesByArtist(ctx, 5, 10, 0)
	require.NoError(t, err)
	require.Len(t, spikes, 1)
}

func testActiveWindowLookup(t *testing.T, st Store) {
	ctx := context.Background()

	// An expired-by-time window that the sweeper has not visited yet
	stale := &schema.AttributionWindow{
		ArtistID:       5,
		HeatSpikeID:    mustCreateSpike(t, st, 5),
		ProviderUserID: 9,
		WindowStart:    storeTestNow.AddDate(0, 0, -120),
		WindowEnd:      storeTestNow.AddDate(0, 0, -30),
		Status:         domain.WindowStatusActive,
	}
	require.NoError(t, st.CreateAttributionWindow(ctx, stale))

	w, err := st.GetActiveWindow(ctx, 5, storeTestNow)
	require.NoError(t, err)
	assert.Nil(t, w, "window past its end must not be returned even while marked active")

	first := &schema.AttributionWindow{
		ArtistID:       5,
		HeatSpikeID:    mustCreateSpike(t, st, 5),
		ProviderUserID: 9,
		WindowStart:    storeTestNow.AddDate(0, 0, -10),
		WindowEnd:      storeTestNow.AddDate(0, 0, 80),
		Status:         domain.WindowStatusActive,
	}
	require.NoError(t, st.CreateAttributionWindow(ctx, first))

	second := &schema.AttributionWindow{
		ArtistID:       5,
		HeatSpikeID:    mustCreateSpike(t, st, 5),
		ProviderUserID: 9,
		WindowStart:    storeTestNow.AddDate(0, 0, -2),
		WindowEnd:      storeTestNow.AddDate(0, 0, 88),
		Status:         domain.WindowStatusActive,
	}
	require.NoError(t, st.CreateAttributionWindow(ctx, second))

	// Overlapping active windows resolve to the most recently created one
	w, err = st.GetActiveWindow(ctx, 5, storeTestNow)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, second.ID, w.ID)

	// Another artist's windows are invisible
	w, err = st.GetActiveWindow(ctx, 6, storeTestNow)
	require.NoError(t, err)
	assert.Nil(t, w)
}

func testWindowExpiry(t *testing.T, st Store) {
	ctx := context.Background()

	overdue := &schema.AttributionWindow{
		ArtistID:       5,
		HeatSpikeID:    mustCreateSpike(t, st, 5),
		ProviderUserID: 9,
		WindowStart:    storeTestNow.AddDate(0, 0, -120),
		WindowEnd:      storeTestNow.AddDate(0, 0, -30),
		Status:         domain.WindowStatusActive,
	}
	current := &schema.AttributionWindow{
		ArtistID:       6,
		HeatSpikeID:    mustCreateSpike(t, st, 6),
		ProviderUserID: 9,
		WindowStart:    storeTestNow.AddDate(0, 0, -10),
		WindowEnd:      storeTestNow.AddDate(0, 0, 80),
		Status:         domain.WindowStatusActive,
	}
	require.NoError(t, st.CreateAttributionWindow(ctx, overdue))
	require.NoError(t, st.CreateAttributionWindow(ctx, current))

	count, err := st.ExpireWindowsBefore(ctx, storeTestNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := st.GetWindowByID(ctx, overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.WindowStatusExpired, got.Status)

	got, err = st.GetWindowByID(ctx, current.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.WindowStatusActive, got.Status)

	// Idempotent: a second sweep changes nothing
	count, err = st.ExpireWindowsBefore(ctx, storeTestNow)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func testBountyTransactions(t *testing.T, st Store) {
	ctx := context.Background()

	bt := &schema.BountyTransaction{
		TransactionID:        "BOUNTY-20260315-AAA111",
		RoyaltyTransactionID: 100,
		AttributionWindowID:  10,
		HeatSpikeID:          20,
		ArtistID:             5,
		ProviderUserID:       9,
		PlatformFeeGross:     10000,
		BountyPercentage:     25.0,
		BountyAmount:         2500,
		NGNOperationsAmount:  7500,
		Status:               domain.SettlementStatusPending,
	}

	rec, created, err := st.CreateBountyTransaction(ctx, bt)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotZero(t, rec.ID)

	// A second settlement attempt for the same royalty transaction returns
	// the existing record untouched
	dup := &schema.BountyTransaction{
		TransactionID:        "BOUNTY-20260315-BBB222",
		RoyaltyTransactionID: 100,
		AttributionWindowID:  10,
		HeatSpikeID:          20,
		ArtistID:             5,
		ProviderUserID:       9,
		PlatformFeeGross:     10000,
		BountyPercentage:     25.0,
		BountyAmount:         2500,
		NGNOperationsAmount:  7500,
		Status:               domain.SettlementStatusPending,
	}
	rec2, created, err := st.CreateBountyTransaction(ctx, dup)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, rec.ID, rec2.ID)
	assert.Equal(t, "BOUNTY-20260315-AAA111", rec2.TransactionID)

	list, err := st.ListBountyTransactionsByProvider(ctx, 9, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func testBountyIDCollision(t *testing.T, st Store) {
	ctx := context.Background()

	first := &schema.BountyTransaction{
		TransactionID:        "BOUNTY-20260315-CCC333",
		RoyaltyTransactionID: 200,
		AttributionWindowID:  10,
		HeatSpikeID:          20,
		ArtistID:             5,
		ProviderUserID:       9,
		PlatformFeeGross:     10000,
		BountyPercentage:     25.0,
		BountyAmount:         2500,
		NGNOperationsAmount:  7500,
		Status:               domain.SettlementStatusPending,
	}
	_, created, err := st.CreateBountyTransaction(ctx, first)
	require.NoError(t, err)
	require.True(t, created)

	// Same transaction ID for a different royalty transaction is a collision
	colliding := &schema.BountyTransaction{
		TransactionID:        "BOUNTY-20260315-CCC333",
		RoyaltyTransactionID: 201,
		AttributionWindowID:  10,
		HeatSpikeID:          20,
		ArtistID:             5,
		ProviderUserID:       9,
		PlatformFeeGross:     10000,
		BountyPercentage:     25.0,
		BountyAmount:         2500,
		NGNOperationsAmount:  7500,
		Status:               domain.SettlementStatusPending,
	}
	_, _, err = st.CreateBountyTransaction(ctx, colliding)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBountyIDCollision)
}

func testVenuePostalCode(t *testing.T, st Store) {
	ctx := context.Background()
	pg := st.(*pgStore)

	venue := &schema.Venue{Name: "The Earl", PostalCode: "30316"}
	require.NoError(t, pg.db.Create(venue).Error)

	code, ok, err := st.GetVenuePostalCode(ctx, venue.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "30316", code)

	_, ok, err = st.GetVenuePostalCode(ctx, venue.ID+1000)
	require.NoError(t, err)
	assert.False(t, ok)
}

func testProviderStatistics(t *testing.T, st Store) {
	ctx := context.Background()

	for _, artistID := range []int64{5, 6} {
		w := &schema.AttributionWindow{
			ArtistID:       artistID,
			HeatSpikeID:    mustCreateSpike(t, st, artistID),
			ProviderUserID: 9,
			WindowStart:    storeTestNow.AddDate(0, 0, -10),
			WindowEnd:      storeTestNow.AddDate(0, 0, 80),
			Status:         domain.WindowStatusActive,
		}
		require.NoError(t, st.CreateAttributionWindow(ctx, w))
	}
	// A window past its end does not count as active, but its artist still
	// counts toward the provider's all-time attributed artists
	stale := &schema.AttributionWindow{
		ArtistID:       7,
		HeatSpikeID:    mustCreateSpike(t, st, 7),
		ProviderUserID: 9,
		WindowStart:    storeTestNow.AddDate(0, 0, -120),
		WindowEnd:      storeTestNow.AddDate(0, 0, -30),
		Status:         domain.WindowStatusActive,
	}
	require.NoError(t, st.CreateAttributionWindow(ctx, stale))

	_, _, err := st.CreateBountyTransaction(ctx, &schema.BountyTransaction{
		TransactionID:        "BOUNTY-20260315-DDD444",
		RoyaltyTransactionID: 300,
		AttributionWindowID:  1,
		HeatSpikeID:          1,
		ArtistID:             5,
		ProviderUserID:       9,
		PlatformFeeGross:     10000,
		BountyPercentage:     25.0,
		BountyAmount:         2550,
		NGNOperationsAmount:  7500,
		Status:               domain.SettlementStatusPending,
	})
	require.NoError(t, err)

	stats, err := st.GetProviderStatistics(ctx, 9, storeTestNow)
	require.NoError(t, err)
	assert.Equal(t, int64(9), stats.ProviderUserID)
	assert.Equal(t, int64(2), stats.ActiveWindows)
	assert.Equal(t, int64(3), stats.UniqueArtists)
	assert.Equal(t, int64(1), stats.TotalBountiesTriggered)
	assert.Equal(t, int64(2550), stats.TotalBountyAmount)
}

func testNotFoundMappings(t *testing.T, st Store) {
	ctx := context.Background()

	_, err := st.GetUpload(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrUploadNotFound)

	_, err = st.GetHeatSpikeByID(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrHeatSpikeNotFound)

	_, err = st.GetWindowByID(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrWindowNotFound)

	_, err = st.GetRoyaltyTransaction(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrRoyaltyTransactionNotFound)
}
