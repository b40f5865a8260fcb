package domain

import (
	"math"
	"time"
)

// WindowStatus represents the lifecycle state of an attribution window
type WindowStatus string

const (
	// WindowStatusActive means the window can still earn bounties
	WindowStatusActive WindowStatus = "active"
	// WindowStatusExpired means the window has passed its end date; terminal
	WindowStatusExpired WindowStatus = "expired"
)

// SettlementStatus represents the payout state of a bounty transaction
type SettlementStatus string

const (
	// SettlementStatusPending means the bounty is recorded but not yet paid out
	SettlementStatusPending SettlementStatus = "pending"
	// SettlementStatusSettled means the downstream payout completed
	SettlementStatusSettled SettlementStatus = "settled"
	// SettlementStatusVoided means the bounty was cancelled by the payout system
	SettlementStatusVoided SettlementStatus = "voided"
)

// FailureType classifies why an upload was flagged into the cemetery
type FailureType string

const (
	// FailureTypeDuplicateHash means the upload's content hash matched an earlier upload
	FailureTypeDuplicateHash FailureType = "duplicate_hash"
	// FailureTypeDisputedData means the upload's spin data was disputed by an artist or label
	FailureTypeDisputedData FailureType = "disputed_data"
	// FailureTypeManualReview means a fraud analyst disqualified the upload
	FailureTypeManualReview FailureType = "manual_review"
)

// IsValidFailureType checks if a failure type is one of the known values
func IsValidFailureType(ft FailureType) bool {
	return ft == FailureTypeDuplicateHash ||
		ft == FailureTypeDisputedData ||
		ft == FailureTypeManualReview
}

// HeatSpikeResult is the detector's per-artist output for one upload
type HeatSpikeResult struct {
	HeatSpikeID         int64     `json:"heat_spike_id"`
	AttributionWindowID int64     `json:"attribution_window_id"`
	ArtistID            int64     `json:"artist_id"`
	UploadID            int64     `json:"upload_id"`
	BaselineSpins       int64     `json:"baseline_spins"`
	SpikeSpins          int64     `json:"spike_spins"`
	SpikeMultiplier     float64   `json:"spike_multiplier"`
	StationsCount       int       `json:"stations_count"`
	ZipCodes            []string  `json:"zip_codes"`
	SpikeStart          time.Time `json:"spike_start"`
	SpikeEnd            time.Time `json:"spike_end"`
}

// GeofenceMatch is the matcher's verdict for one (spike, venue) pair
type GeofenceMatch struct {
	Matched         bool    `json:"matched"`
	BonusPercentage float64 `json:"bonus_percentage"`
	MatchedZipCode  string  `json:"matched_zip_code,omitempty"`
}

// ProviderStatistics aggregates a provider's windows and resulting settlements
type ProviderStatistics struct {
	ProviderUserID         int64 `json:"provider_user_id"`
	ActiveWindows          int64 `json:"active_windows"`
	UniqueArtists          int64 `json:"unique_artists"`
	TotalBountiesTriggered int64 `json:"total_bounties_triggered"`
	TotalBountyAmount      int64 `json:"total_bounty_amount"`
}

// SpikeMultiplier computes spikeSpins/baselineSpins rounded to 2 decimals.
// baselineSpins must be > 0; the cold-start case is handled by the caller.
func SpikeMultiplier(spikeSpins, baselineSpins int64) float64 {
	return math.Round(float64(spikeSpins)/float64(baselineSpins)*100) / 100
}

// PercentOfCents computes pct% of an amount in cents, rounded half away from
// zero to a whole cent. Used for both the bounty split and the geofence bonus.
func PercentOfCents(amount int64, pct float64) int64 {
	return int64(math.Round(float64(amount) * pct / 100))
}
