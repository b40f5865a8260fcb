package schema

import (
	"time"

	"github.com/heatwave-audio/attribution-engine/internal/domain"
)

// CemeteryRecord represents the cemetery_records table - the integrity-flag
// registry of disqualified upload sources. A record here permanently blocks
// any spike or window derived from the upload from producing new bounty
// settlements; it never retroactively deletes existing settlements.
type CemeteryRecord struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UploadID is the disqualified upload; unique together with FailureType
	// so flagging twice for the same reason is a no-op
	UploadID int64 `gorm:"column:upload_id;not null;uniqueIndex:idx_cemetery_upload_failure,priority:1"`
	// FailureType classifies the integrity failure (duplicate_hash, disputed_data, manual_review)
	FailureType domain.FailureType `gorm:"column:failure_type;not null;type:text;uniqueIndex:idx_cemetery_upload_failure,priority:2"`
	// ExpectedHash is the content hash the upload should have had
	ExpectedHash string `gorm:"column:expected_hash;type:text"`
	// ActualHash is the content hash the upload actually had
	ActualHash string `gorm:"column:actual_hash;type:text"`
	// ArtistName is a denormalized label for fraud-ops dashboards
	ArtistName string `gorm:"column:artist_name;type:text"`
	// DetectedBy names the system or analyst that flagged the upload
	DetectedBy string `gorm:"column:detected_by;type:text"`
	// CreatedAt is when the flag was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the CemeteryRecord model
func (CemeteryRecord) TableName() string {
	return "cemetery_records"
}
