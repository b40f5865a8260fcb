package schema

import (
	"time"

	"gorm.io/datatypes"
)

// HeatSpike represents the heat_spikes table - one anomalous-volume event
// detected for one artist in one spin upload. Rows are immutable after the
// detection run that created them.
type HeatSpike struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ArtistID references the artist whose spin volume spiked
	ArtistID int64 `gorm:"column:artist_id;not null;index:idx_heat_spikes_artist"`
	// UploadID references the spin report upload that surfaced the spike
	UploadID int64 `gorm:"column:upload_id;not null;index:idx_heat_spikes_upload"`
	// ProviderUserID is the station/provider user that submitted the upload
	ProviderUserID int64 `gorm:"column:provider_user_id;not null;index:idx_heat_spikes_provider"`
	// DetectionDate is when the detection run observed the spike
	DetectionDate time.Time `gorm:"column:detection_date;not null;type:timestamptz"`
	// BaselineSpins is the artist's trailing-period average spin count, scaled to the upload window length
	BaselineSpins int64 `gorm:"column:baseline_spins;not null"`
	// SpikeSpins is the artist's spin count inside the upload's date range
	SpikeSpins int64 `gorm:"column:spike_spins;not null"`
	// SpikeMultiplier is spike_spins / baseline_spins rounded to 2 decimals (0 for cold-start spikes)
	SpikeMultiplier float64 `gorm:"column:spike_multiplier;not null;type:decimal(10,2)"`
	// ThresholdMet records whether the multiplier cleared the configured detection threshold
	ThresholdMet bool `gorm:"column:threshold_met;not null;default:false"`
	// SpikeStartDate is the start of the upload's reporting period
	SpikeStartDate time.Time `gorm:"column:spike_start_date;not null;type:timestamptz"`
	// SpikeEndDate is the end of the upload's reporting period
	SpikeEndDate time.Time `gorm:"column:spike_end_date;not null;type:timestamptz"`
	// StationsCount is the number of distinct stations reporting spins in the spike window
	StationsCount int `gorm:"column:stations_count;not null"`
	// ZipCodes is the deduplicated set of postal codes observed during the spike, stored as a JSON array
	ZipCodes datatypes.JSON `gorm:"column:zip_codes;type:jsonb"`
	// CreatedAt is when this row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`

	// Associations
	Windows []AttributionWindow `gorm:"foreignKey:HeatSpikeID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the HeatSpike model
func (HeatSpike) TableName() string {
	return "heat_spikes"
}
