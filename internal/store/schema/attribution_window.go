package schema

import (
	"time"

	"github.com/heatwave-audio/attribution-engine/internal/domain"
)

// AttributionWindow represents the attribution_windows table - the
// time-bounded right to a discovery bounty derived from one heat spike.
// Status only ever moves active -> expired, and only through time.
type AttributionWindow struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ArtistID references the artist the window attributes revenue to
	ArtistID int64 `gorm:"column:artist_id;not null;index:idx_attribution_windows_artist_status,priority:1"`
	// HeatSpikeID is the owning spike; at most one window per spike
	HeatSpikeID int64 `gorm:"column:heat_spike_id;not null;uniqueIndex"`
	// ProviderUserID is the provider that earns bounties from this window
	ProviderUserID int64 `gorm:"column:provider_user_id;not null;index:idx_attribution_windows_provider"`
	// WindowStart is when the attribution period opens
	WindowStart time.Time `gorm:"column:window_start;not null;type:timestamptz"`
	// WindowEnd is WindowStart plus the configured window length (90 days by default)
	WindowEnd time.Time `gorm:"column:window_end;not null;type:timestamptz"`
	// Status is the stored lifecycle state; settlement re-checks WindowEnd
	// against the clock rather than trusting this column
	Status domain.WindowStatus `gorm:"column:status;not null;type:text;index:idx_attribution_windows_artist_status,priority:2"`
	// CreatedAt is when this row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`

	// Associations
	HeatSpike HeatSpike `gorm:"foreignKey:HeatSpikeID"`
}

// TableName specifies the table name for the AttributionWindow model
func (AttributionWindow) TableName() string {
	return "attribution_windows"
}
