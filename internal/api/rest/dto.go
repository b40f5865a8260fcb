package rest

import (
	"encoding/json"
	"time"

	"github.com/heatwave-audio/attribution-engine/internal/domain"
	"github.com/heatwave-audio/attribution-engine/internal/store/schema"
)

// WindowResponse is the wire representation of an attribution window
type WindowResponse struct {
	ID             int64               `json:"id"`
	ArtistID       int64               `json:"artist_id"`
	HeatSpikeID    int64               `json:"heat_spike_id"`
	ProviderUserID int64               `json:"provider_user_id"`
	WindowStart    time.Time           `json:"window_start"`
	WindowEnd      time.Time           `json:"window_end"`
	Status         domain.WindowStatus `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
}

// SpikeResponse is the wire representation of a heat spike
type SpikeResponse struct {
	ID              int64     `json:"id"`
	ArtistID        int64     `json:"artist_id"`
	UploadID        int64     `json:"upload_id"`
	ProviderUserID  int64     `json:"provider_user_id"`
	DetectionDate   time.Time `json:"detection_date"`
	BaselineSpins   int64     `json:"baseline_spins"`
	SpikeSpins      int64     `json:"spike_spins"`
	SpikeMultiplier float64   `json:"spike_multiplier"`
	ThresholdMet    bool      `json:"threshold_met"`
	SpikeStartDate  time.Time `json:"spike_start_date"`
	SpikeEndDate    time.Time `json:"spike_end_date"`
	StationsCount   int       `json:"stations_count"`
	ZipCodes        []string  `json:"zip_codes"`
}

// SettlementResponse is the wire representation of a bounty transaction.
// All money fields are integer cents.
type SettlementResponse struct {
	ID                      int64                   `json:"id"`
	TransactionID           string                  `json:"transaction_id"`
	RoyaltyTransactionID    int64                   `json:"royalty_transaction_id"`
	AttributionWindowID     int64                   `json:"attribution_window_id"`
	HeatSpikeID             int64                   `json:"heat_spike_id"`
	ArtistID                int64                   `json:"artist_id"`
	ProviderUserID          int64                   `json:"provider_user_id"`
	PlatformFeeGross        int64                   `json:"platform_fee_gross"`
	BountyPercentage        float64                 `json:"bounty_percentage"`
	BountyAmount            int64                   `json:"bounty_amount"`
	NGNOperationsAmount     int64                   `json:"ngn_operations_amount"`
	GeofenceMatched         bool                    `json:"geofence_matched"`
	GeofenceBonusPercentage float64                 `json:"geofence_bonus_percentage"`
	GeofenceBonusAmount     int64                   `json:"geofence_bonus_amount"`
	VenueID                 *int64                  `json:"venue_id,omitempty"`
	MatchedZipCode          *string                 `json:"matched_zip_code,omitempty"`
	Status                  domain.SettlementStatus `json:"status"`
	CreatedAt               time.Time               `json:"created_at"`
}

// FlagRequest asks for an upload to be flagged into the cemetery
type FlagRequest struct {
	UploadID     int64  `json:"upload_id" binding:"required"`
	FailureType  string `json:"failure_type" binding:"required"`
	ExpectedHash string `json:"expected_hash"`
	ActualHash   string `json:"actual_hash"`
	ArtistName   string `json:"artist_name"`
	DetectedBy   string `json:"detected_by"`
}

// FlagResponse is the wire representation of a cemetery record
type FlagResponse struct {
	ID          int64              `json:"id"`
	UploadID    int64              `json:"upload_id"`
	FailureType domain.FailureType `json:"failure_type"`
	DetectedBy  string             `json:"detected_by"`
	CreatedAt   time.Time          `json:"created_at"`
}

func toWindowResponse(w *schema.AttributionWindow) *WindowResponse {
	if w == nil {
		return nil
	}
	return &WindowResponse{
		ID:             w.ID,
		ArtistID:       w.ArtistID,
		HeatSpikeID:    w.HeatSpikeID,
		ProviderUserID: w.ProviderUserID,
		WindowStart:    w.WindowStart,
		WindowEnd:      w.WindowEnd,
		Status:         w.Status,
		CreatedAt:      w.CreatedAt,
	}
}

func toSpikeResponse(s *schema.HeatSpike) SpikeResponse {
	var zipCodes []string
	if len(s.ZipCodes) > 0 {
		// Decode errors leave the list empty rather than failing the response
		_ = json.Unmarshal(s.ZipCodes, &zipCodes)
	}
	return SpikeResponse{
		ID:              s.ID,
		ArtistID:        s.ArtistID,
		UploadID:        s.UploadID,
		ProviderUserID:  s.ProviderUserID,
		DetectionDate:   s.DetectionDate,
		BaselineSpins:   s.BaselineSpins,
		SpikeSpins:      s.SpikeSpins,
		SpikeMultiplier: s.SpikeMultiplier,
		ThresholdMet:    s.ThresholdMet,
		SpikeStartDate:  s.SpikeStartDate,
		SpikeEndDate:    s.SpikeEndDate,
		StationsCount:   s.StationsCount,
		ZipCodes:        zipCodes,
	}
}

func toSettlementResponse(bt *schema.BountyTransaction) SettlementResponse {
	return SettlementResponse{
		ID:                      bt.ID,
		TransactionID:           bt.TransactionID,
		RoyaltyTransactionID:    bt.RoyaltyTransactionID,
		AttributionWindowID:     bt.AttributionWindowID,
		HeatSpikeID:             bt.HeatSpikeID,
		ArtistID:                bt.ArtistID,
		ProviderUserID:          bt.ProviderUserID,
		PlatformFeeGross:        bt.PlatformFeeGross,
		BountyPercentage:        bt.BountyPercentage,
		BountyAmount:            bt.BountyAmount,
		NGNOperationsAmount:     bt.NGNOperationsAmount,
		GeofenceMatched:         bt.GeofenceMatched,
		GeofenceBonusPercentage: bt.GeofenceBonusPercentage,
		GeofenceBonusAmount:     bt.GeofenceBonusAmount,
		VenueID:                 bt.VenueID,
		MatchedZipCode:          bt.MatchedZipCode,
		Status:                  bt.Status,
		CreatedAt:               bt.CreatedAt,
	}
}
