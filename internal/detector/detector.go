package detector

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/heatwave-audio/attribution-engine/internal/adapter"
	"github.com/heatwave-audio/attribution-engine/internal/domain"
	"github.com/heatwave-audio/attribution-engine/internal/integrity"
	"github.com/heatwave-audio/attribution-engine/internal/logger"
	"github.com/heatwave-audio/attribution-engine/internal/store"
	"github.com/heatwave-audio/attribution-engine/internal/store/schema"
	"github.com/heatwave-audio/attribution-engine/internal/window"
)

// Config holds the detector's tunable knobs
type Config struct {
	// SpikeThreshold is the minimum spike multiplier that counts as a spike
	SpikeThreshold float64
	// BaselinePeriod is the trailing period the baseline average is drawn from
	BaselinePeriod time.Duration
}

// Detector compares a newly ingested spin upload against each artist's
// rolling baseline and records a heat spike, together with its attribution
// window, for every artist whose volume clears the threshold.
//
//go:generate mockgen -source=detector.go -destination=../mocks/detector.go -package=mocks -mock_names=Detector=MockDetector
type Detector interface {
	// DetectSpikesFromUpload runs detection for one upload and returns the
	// spikes that met threshold. Artists below threshold are silently
	// skipped. A tainted upload yields an empty list - a hard gate, not a
	// warning.
	DetectSpikesFromUpload(ctx context.Context, uploadID int64) ([]domain.HeatSpikeResult, error)
}

type detector struct {
	config  Config
	store   store.Store
	ledger  integrity.Ledger
	windows window.Manager
	clock   adapter.Clock
}

// NewDetector creates a heat spike detector
func NewDetector(cfg Config, st store.Store, ledger integrity.Ledger, windows window.Manager, clock adapter.Clock) Detector {
	return &detector{
		config:  cfg,
		store:   st,
		ledger:  ledger,
		windows: windows,
		clock:   clock,
	}
}

// artistVolume is the in-memory reduction of one artist's spin groups
type artistVolume struct {
	spins    int64
	stations map[int64]struct{}
	zipCodes map[string]struct{}
}

// DetectSpikesFromUpload runs detection for one upload
func (d *detector) DetectSpikesFromUpload(ctx context.Context, uploadID int64) ([]domain.HeatSpikeResult, error) {
	tainted, err := d.ledger.IsTainted(ctx, uploadID)
	if err != nil {
		return nil, fmt.Errorf("failed to check upload %d integrity: %w", uploadID, err)
	}
	if tainted {
		logger.WarnCtx(ctx, "Skipping spike detection for tainted upload",
			zap.Int64("upload_id", uploadID),
		)
		return []domain.HeatSpikeResult{}, nil
	}

	upload, err := d.store.GetUpload(ctx, uploadID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload %d: %w", uploadID, err)
	}

	// One aggregate query for the whole upload, reduced per artist in memory
	groups, err := d.store.GetUploadSpinGroups(ctx, uploadID)
	if err != nil {
		return nil, fmt.Errorf("failed to load spins for upload %d: %w", uploadID, err)
	}

	volumes := make(map[int64]*artistVolume)
	for _, g := range groups {
		vol, ok := volumes[g.ArtistID]
		if !ok {
			vol = &artistVolume{
				stations: make(map[int64]struct{}),
				zipCodes: make(map[string]struct{}),
			}
			volumes[g.ArtistID] = vol
		}
		vol.spins += g.Spins
		vol.stations[g.StationID] = struct{}{}
		if g.ZipCode != "" {
			vol.zipCodes[g.ZipCode] = struct{}{}
		}
	}

	// Deterministic artist order for stable logs and tests
	artistIDs := make([]int64, 0, len(volumes))
	for artistID := range volumes {
		artistIDs = append(artistIDs, artistID)
	}
	sort.Slice(artistIDs, func(i, j int) bool { return artistIDs[i] < artistIDs[j] })

	now := d.clock.Now()
	results := make([]domain.HeatSpikeResult, 0)

	for _, artistID := range artistIDs {
		vol := volumes[artistID]

		baseline, err := d.baselineSpins(ctx, artistID, upload)
		if err != nil {
			return nil, err
		}

		multiplier, thresholdMet := d.evaluate(vol.spins, baseline)
		if !thresholdMet {
			// Below threshold is the normal negative path, not an error
			continue
		}

		zipCodes := sortedKeys(vol.zipCodes)
		zipJSON, err := json.Marshal(zipCodes)
		if err != nil {
			return nil, fmt.Errorf("failed to encode zip codes for artist %d: %w", artistID, err)
		}

		spike := &schema.HeatSpike{
			ArtistID:        artistID,
			UploadID:        uploadID,
			ProviderUserID:  upload.ProviderUserID,
			DetectionDate:   now,
			BaselineSpins:   baseline,
			SpikeSpins:      vol.spins,
			SpikeMultiplier: multiplier,
			ThresholdMet:    true,
			SpikeStartDate:  upload.PeriodStart,
			SpikeEndDate:    upload.PeriodEnd,
			StationsCount:   len(vol.stations),
			ZipCodes:        zipJSON,
		}

		// Spike and window are one logical unit of work: a spike must never
		// be recorded without its window
		win := d.windows.NewWindow(artistID, upload.ProviderUserID, now)
		if err := d.store.CreateHeatSpikeWithWindow(ctx, spike, win); err != nil {
			return nil, fmt.Errorf("failed to persist spike for artist %d: %w", artistID, err)
		}

		logger.InfoCtx(ctx, "Heat spike detected",
			zap.Int64("artist_id", artistID),
			zap.Int64("upload_id", uploadID),
			zap.Int64("baseline_spins", baseline),
			zap.Int64("spike_spins", vol.spins),
			zap.Float64("spike_multiplier", multiplier),
			zap.Int("stations_count", len(vol.stations)),
			zap.Int64("window_id", win.ID),
		)

		results = append(results, domain.HeatSpikeResult{
			HeatSpikeID:         spike.ID,
			AttributionWindowID: win.ID,
			ArtistID:            artistID,
			UploadID:            uploadID,
			BaselineSpins:       baseline,
			SpikeSpins:          vol.spins,
			SpikeMultiplier:     multiplier,
			StationsCount:       len(vol.stations),
			ZipCodes:            zipCodes,
			SpikeStart:          upload.PeriodStart,
			SpikeEnd:            upload.PeriodEnd,
		})
	}

	return results, nil
}

// baselineSpins computes the artist's trailing-period average spin count,
// normalized to the upload's reporting window length and excluding the
// upload itself
func (d *detector) baselineSpins(ctx context.Context, artistID int64, upload *schema.Upload) (int64, error) {
	from := upload.PeriodStart.Add(-d.config.BaselinePeriod)
	total, err := d.store.GetArtistSpinTotal(ctx, artistID, from, upload.PeriodStart, upload.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to compute baseline for artist %d: %w", artistID, err)
	}
	if total == 0 {
		return 0, nil
	}

	windowLen := upload.PeriodEnd.Sub(upload.PeriodStart)
	if windowLen <= 0 || d.config.BaselinePeriod <= 0 {
		return total, nil
	}

	scale := float64(windowLen) / float64(d.config.BaselinePeriod)
	if scale >= 1 {
		return total, nil
	}
	return int64(math.Round(float64(total) * scale)), nil
}

// evaluate applies the threshold gate. With no baseline, any positive spike
// volume is an automatic match (cold start); the multiplier is left at 0
// since there is nothing to divide by.
func (d *detector) evaluate(spikeSpins, baselineSpins int64) (float64, bool) {
	if baselineSpins > 0 {
		multiplier := domain.SpikeMultiplier(spikeSpins, baselineSpins)
		return multiplier, multiplier >= d.config.SpikeThreshold
	}
	return 0, spikeSpins > 0
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
