package schema

import "time"

// Upload represents the uploads table, owned by the report-ingestion side.
// The engine reads it for the reporting period and the submitting provider.
type Upload struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ProviderUserID is the station/provider user that submitted the report
	ProviderUserID int64 `gorm:"column:provider_user_id;not null;index"`
	// PeriodStart is the start of the reporting period covered by the upload
	PeriodStart time.Time `gorm:"column:period_start;not null;type:timestamptz"`
	// PeriodEnd is the end of the reporting period covered by the upload
	PeriodEnd time.Time `gorm:"column:period_end;not null;type:timestamptz"`
	// CreatedAt is when the upload was ingested
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Upload model
func (Upload) TableName() string {
	return "uploads"
}
