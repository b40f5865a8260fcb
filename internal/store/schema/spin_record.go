package schema

import "time"

// SpinRecord represents the spin_records table. The table is owned by the
// report-ingestion side of the application; this engine only reads it to
// compute baselines and spike volumes.
type SpinRecord struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UploadID is the spin report upload this row arrived in
	UploadID int64 `gorm:"column:upload_id;not null;index:idx_spin_records_upload"`
	// ArtistID is the artist the spins are credited to
	ArtistID int64 `gorm:"column:artist_id;not null;index:idx_spin_records_artist_played,priority:1"`
	// StationID is the reporting radio station
	StationID int64 `gorm:"column:station_id;not null"`
	// ZipCode is the station's broadcast postal code
	ZipCode string `gorm:"column:zip_code;not null;type:text"`
	// Spins is the play count reported for this (artist, station, day) row
	Spins int64 `gorm:"column:spins;not null"`
	// PlayedOn is the broadcast date the row reports
	PlayedOn time.Time `gorm:"column:played_on;not null;type:timestamptz;index:idx_spin_records_artist_played,priority:2"`
}

// TableName specifies the table name for the SpinRecord model
func (SpinRecord) TableName() string {
	return "spin_records"
}
