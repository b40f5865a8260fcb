package schema

import (
	"time"

	"github.com/heatwave-audio/attribution-engine/internal/domain"
)

// BountyTransaction represents the bounty_transactions table - the immutable
// settlement record produced when a royalty transaction lands inside an
// active attribution window. All money columns are integer cents; the split
// invariant is bounty_amount - geofence_bonus_amount + ngn_operations_amount
// == platform_fee_gross, since the geofence bonus is paid from platform
// margin rather than from the operations share.
type BountyTransaction struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TransactionID is the human-readable settlement reference (BOUNTY-YYYYMMDD-XXXXXX)
	TransactionID string `gorm:"column:transaction_id;not null;uniqueIndex;type:text"`
	// RoyaltyTransactionID references the external royalty ledger row; the
	// unique index is what makes settlement idempotent per royalty transaction
	RoyaltyTransactionID int64 `gorm:"column:royalty_transaction_id;not null;uniqueIndex"`
	// AttributionWindowID is the window that was active at calculation time
	AttributionWindowID int64 `gorm:"column:attribution_window_id;not null;index"`
	// HeatSpikeID is the spike the window derives from
	HeatSpikeID int64 `gorm:"column:heat_spike_id;not null"`
	// ArtistID is the attributed artist
	ArtistID int64 `gorm:"column:artist_id;not null;index"`
	// ProviderUserID is the provider earning the bounty
	ProviderUserID int64 `gorm:"column:provider_user_id;not null;index:idx_bounty_transactions_provider"`
	// PlatformFeeGross is the platform fee being split, in cents
	PlatformFeeGross int64 `gorm:"column:platform_fee_gross;not null"`
	// BountyPercentage is the configured provider share of the platform fee
	BountyPercentage float64 `gorm:"column:bounty_percentage;not null;type:decimal(5,2)"`
	// BountyAmount is the provider's share in cents, geofence bonus included
	BountyAmount int64 `gorm:"column:bounty_amount;not null"`
	// NGNOperationsAmount is the platform operations share in cents
	NGNOperationsAmount int64 `gorm:"column:ngn_operations_amount;not null"`
	// GeofenceMatched records whether the revenue venue fell inside the spike footprint
	GeofenceMatched bool `gorm:"column:geofence_matched;not null;default:false"`
	// GeofenceBonusPercentage is the bonus rate applied when matched (0 otherwise)
	GeofenceBonusPercentage float64 `gorm:"column:geofence_bonus_percentage;not null;type:decimal(5,2)"`
	// GeofenceBonusAmount is the bonus portion folded into BountyAmount, in cents
	GeofenceBonusAmount int64 `gorm:"column:geofence_bonus_amount;not null;default:0"`
	// VenueID is the revenue venue, when the royalty transaction carried one
	VenueID *int64 `gorm:"column:venue_id"`
	// MatchedZipCode is the postal code that produced the geofence match
	MatchedZipCode *string `gorm:"column:matched_zip_code;type:text"`
	// Status is pending until the downstream payout system settles or voids it
	Status domain.SettlementStatus `gorm:"column:status;not null;type:text"`
	// CreatedAt is when this row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the BountyTransaction model
func (BountyTransaction) TableName() string {
	return "bounty_transactions"
}
