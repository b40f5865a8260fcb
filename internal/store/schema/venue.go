package schema

// Venue represents the venues table, owned by the surrounding application.
// The engine only reads postal codes for geofence matching.
type Venue struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the venue's display name
	Name string `gorm:"column:name;type:text"`
	// PostalCode is the venue's location, matched against spike footprints
	PostalCode string `gorm:"column:postal_code;not null;type:text"`
}

// TableName specifies the table name for the Venue model
func (Venue) TableName() string {
	return "venues"
}
