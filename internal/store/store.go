package store

import (
	"context"
	"time"

	"github.com/heatwave-audio/attribution-engine/internal/domain"
	"github.com/heatwave-audio/attribution-engine/internal/store/schema"
)

// UploadSpinGroup is one (artist, station, zip) aggregate row for an upload.
// The detector reduces these in memory into per-artist spike candidates.
type UploadSpinGroup struct {
	ArtistID  int64  `gorm:"column:artist_id"`
	StationID int64  `gorm:"column:station_id"`
	ZipCode   string `gorm:"column:zip_code"`
	Spins     int64  `gorm:"column:spins"`
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// IsUploadTainted checks whether the upload has a cemetery record
	IsUploadTainted(ctx context.Context, uploadID int64) (bool, error)
	// CreateCemeteryRecord persists an integrity flag. Idempotent per
	// (upload_id, failure_type): flagging twice returns the existing record.
	CreateCemeteryRecord(ctx context.Context, rec *schema.CemeteryRecord) (*schema.CemeteryRecord, error)

	// GetUpload retrieves an upload's reporting period and provider
	GetUpload(ctx context.Context, uploadID int64) (*schema.Upload, error)
	// GetUploadSpinGroups aggregates the upload's spin rows per (artist, station, zip)
	GetUploadSpinGroups(ctx context.Context, uploadID int64) ([]UploadSpinGroup, error)
	// GetArtistSpinTotal sums an artist's spins in [from, to), excluding one upload
	GetArtistSpinTotal(ctx context.Context, artistID int64, from, to time.Time, excludeUploadID int64) (int64, error)

	// CreateHeatSpikeWithWindow persists a spike and its attribution window in
	// one transaction, so a spike is never recorded without its window
	CreateHeatSpikeWithWindow(ctx context.Context, spike *schema.HeatSpike, window *schema.AttributionWindow) error
	// GetHeatSpikeByID retrieves a heat spike
	GetHeatSpikeByID(ctx context.Context, id int64) (*schema.HeatSpike, error)
	// ListHeatSpikesByArtist lists an artist's spikes, newest first
	ListHeatSpikesByArtist(ctx context.Context, artistID int64, limit, offset int) ([]*schema.HeatSpike, error)

	// CreateAttributionWindow persists a standalone window
	CreateAttributionWindow(ctx context.Context, w *schema.AttributionWindow) error
	// GetActiveWindow returns the most recently created window for the artist
	// that is active both by stored status and by window_end >= now
	GetActiveWindow(ctx context.Context, artistID int64, now time.Time) (*schema.AttributionWindow, error)
	// GetWindowByID retrieves a window
	GetWindowByID(ctx context.Context, id int64) (*schema.AttributionWindow, error)
	// ExpireWindowsBefore transitions active windows past their end to expired
	// and reports how many rows changed
	ExpireWindowsBefore(ctx context.Context, now time.Time) (int64, error)
	// GetProviderStatistics aggregates a provider's windows and settlements
	GetProviderStatistics(ctx context.Context, providerUserID int64, now time.Time) (*domain.ProviderStatistics, error)

	// GetRoyaltyTransaction reads a row from the external royalty ledger
	GetRoyaltyTransaction(ctx context.Context, id int64) (*schema.RoyaltyTransaction, error)
	// GetVenuePostalCode looks up a venue's postal code; ok is false when the
	// venue is unknown, which is a normal outcome rather than an error
	GetVenuePostalCode(ctx context.Context, venueID int64) (postalCode string, ok bool, err error)

	// CreateBountyTransaction inserts a settlement record. If a record already
	// exists for the same royalty_transaction_id the existing record is
	// returned with created=false. A transaction_id collision surfaces as
	// domain.ErrBountyIDCollision so the caller can regenerate and retry.
	CreateBountyTransaction(ctx context.Context, bt *schema.BountyTransaction) (rec *schema.BountyTransaction, created bool, err error)
	// ListBountyTransactionsByProvider lists a provider's settlements, newest first
	ListBountyTransactionsByProvider(ctx context.Context, providerUserID int64, limit, offset int) ([]*schema.BountyTransaction, error)

	// Ping verifies database connectivity
	Ping(ctx context.Context) error
}
