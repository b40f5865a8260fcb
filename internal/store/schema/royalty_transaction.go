package schema

import "time"

// RoyaltyTransaction represents the royalty_transactions table, owned by the
// external royalty ledger. The engine reads it to resolve the platform fee
// and venue for a settlement calculation; it never writes here.
type RoyaltyTransaction struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ArtistID is the artist the royalty accrued to
	ArtistID int64 `gorm:"column:artist_id;not null;index"`
	// PlatformFeeGross is the platform fee on the transaction, in cents
	PlatformFeeGross int64 `gorm:"column:platform_fee_gross;not null"`
	// VenueID is the venue that generated the revenue, when known
	VenueID *int64 `gorm:"column:venue_id"`
	// CreatedAt is when the royalty posted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the RoyaltyTransaction model
func (RoyaltyTransaction) TableName() string {
	return "royalty_transactions"
}
