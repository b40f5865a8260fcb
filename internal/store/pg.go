package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/heatwave-audio/attribution-engine/internal/domain"
	"github.com/heatwave-audio/attribution-engine/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance. The gorm connection
// must be opened with TranslateError enabled so unique violations surface as
// gorm.ErrDuplicatedKey.
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to conservative defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// IsUploadTainted checks whether the upload has a cemetery record
func (s *pgStore) IsUploadTainted(ctx context.Context, uploadID int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.CemeteryRecord{}).
		Where("upload_id = ?", uploadID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check cemetery records: %w", err)
	}
	return count > 0, nil
}

// CreateCemeteryRecord persists an integrity flag, idempotent per (upload_id, failure_type)
func (s *pgStore) CreateCemeteryRecord(ctx context.Context, rec *schema.CemeteryRecord) (*schema.CemeteryRecord, error) {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "upload_id"}, {Name: "failure_type"}},
		DoNothing: true,
	}).Create(rec).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create cemetery record: %w", err)
	}

	// ID 0 means the (upload_id, failure_type) pair was already flagged; the
	// caller gets the existing record rather than a duplicate
	if rec.ID == 0 {
		var existing schema.CemeteryRecord
		err := s.db.WithContext(ctx).
			Where("upload_id = ? AND failure_type = ?", rec.UploadID, rec.FailureType).
			First(&existing).Error
		if err != nil {
			return nil, fmt.Errorf("failed to get existing cemetery record: %w", err)
		}
		return &existing, nil
	}

	return rec, nil
}

// GetUpload retrieves an upload's reporting period and provider
func (s *pgStore) GetUpload(ctx context.Context, uploadID int64) (*schema.Upload, error) {
	var upload schema.Upload
	err := s.db.WithContext(ctx).Where("id = ?", uploadID).First(&upload).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUploadNotFound
		}
		return nil, fmt.Errorf("failed to get upload: %w", err)
	}
	return &upload, nil
}

// GetUploadSpinGroups aggregates the upload's spin rows per (artist, station, zip)
// in a single query; the detector reduces the groups per artist in memory.
func (s *pgStore) GetUploadSpinGroups(ctx context.Context, uploadID int64) ([]UploadSpinGroup, error) {
	var groups []UploadSpinGroup
	err := s.db.WithContext(ctx).
		Model(&schema.SpinRecord{}).
		Select("artist_id, station_id, zip_code, SUM(spins) AS spins").
		Where("upload_id = ?", uploadID).
		Group("artist_id, station_id, zip_code").
		Order("artist_id").
		Find(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate upload spins: %w", err)
	}
	return groups, nil
}

// GetArtistSpinTotal sums an artist's spins in [from, to), excluding one upload
func (s *pgStore) GetArtistSpinTotal(ctx context.Context, artistID int64, from, to time.Time, excludeUploadID int64) (int64, error) {
	var total *int64
	err := s.db.WithContext(ctx).
		Model(&schema.SpinRecord{}).
		Select("SUM(spins)").
		Where("artist_id = ? AND played_on >= ? AND played_on < ? AND upload_id <> ?",
			artistID, from, to, excludeUploadID).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum artist spins: %w", err)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// CreateHeatSpikeWithWindow persists a spike and its window atomically
func (s *pgStore) CreateHeatSpikeWithWindow(ctx context.Context, spike *schema.HeatSpike, window *schema.AttributionWindow) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(spike).Error; err != nil {
			return fmt.Errorf("failed to create heat spike: %w", err)
		}

		window.HeatSpikeID = spike.ID
		if err := tx.Create(window).Error; err != nil {
			return fmt.Errorf("failed to create attribution window: %w", err)
		}

		return nil
	})
}

// GetHeatSpikeByID retrieves a heat spike
func (s *pgStore) GetHeatSpikeByID(ctx context.Context, id int64) (*schema.HeatSpike, error) {
	var spike schema.HeatSpike
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&spike).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHeatSpikeNotFound
		}
		return nil, fmt.Errorf("failed to get heat spike: %w", err)
	}
	return &spike, nil
}

// ListHeatSpikesByArtist lists an artist's spikes, newest first
func (s *pgStore) ListHeatSpikesByArtist(ctx context.Context, artistID int64, limit, offset int) ([]*schema.HeatSpike, error) {
	var spikes []*schema.HeatSpike
	err := s.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("detection_date DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&spikes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list heat spikes: %w", err)
	}
	return spikes, nil
}

// CreateAttributionWindow persists a standalone window
func (s *pgStore) CreateAttributionWindow(ctx context.Context, w *schema.AttributionWindow) error {
	if err := s.db.WithContext(ctx).Create(w).Error; err != nil {
		return fmt.Errorf("failed to create attribution window: %w", err)
	}
	return nil
}

// GetActiveWindow returns the most recently created window for the artist
// that is active by stored status AND by window_end, so a stale 'active' row
// past its end never qualifies regardless of sweep timing.
func (s *pgStore) GetActiveWindow(ctx context.Context, artistID int64, now time.Time) (*schema.AttributionWindow, error) {
	var window schema.AttributionWindow
	err := s.db.WithContext(ctx).
		Where("artist_id = ? AND status = ? AND window_end >= ?", artistID, domain.WindowStatusActive, now).
		Order("created_at DESC, id DESC").
		First(&window).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active window: %w", err)
	}
	return &window, nil
}

// GetWindowByID retrieves a window
func (s *pgStore) GetWindowByID(ctx context.Context, id int64) (*schema.AttributionWindow, error) {
	var window schema.AttributionWindow
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&window).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWindowNotFound
		}
		return nil, fmt.Errorf("failed to get window: %w", err)
	}
	return &window, nil
}

// ExpireWindowsBefore transitions active windows past their end to expired.
// Running it twice in a row changes zero additional rows the second time.
func (s *pgStore) ExpireWindowsBefore(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.AttributionWindow{}).
		Where("status = ? AND window_end < ?", domain.WindowStatusActive, now).
		Update("status", domain.WindowStatusExpired)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to expire windows: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// GetProviderStatistics aggregates a provider's windows and settlements
func (s *pgStore) GetProviderStatistics(ctx context.Context, providerUserID int64, now time.Time) (*domain.ProviderStatistics, error) {
	stats := &domain.ProviderStatistics{ProviderUserID: providerUserID}

	err := s.db.WithContext(ctx).
		Model(&schema.AttributionWindow{}).
		Where("provider_user_id = ? AND status = ? AND window_end >= ?",
			providerUserID, domain.WindowStatusActive, now).
		Count(&stats.ActiveWindows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count active windows: %w", err)
	}

	err = s.db.WithContext(ctx).
		Model(&schema.AttributionWindow{}).
		Where("provider_user_id = ?", providerUserID).
		Distinct("artist_id").
		Count(&stats.UniqueArtists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count unique artists: %w", err)
	}

	var settled struct {
		Count int64 `gorm:"column:count"`
		Total int64 `gorm:"column:total"`
	}
	err = s.db.WithContext(ctx).
		Model(&schema.BountyTransaction{}).
		Select("COUNT(*) AS count, COALESCE(SUM(bounty_amount), 0) AS total").
		Where("provider_user_id = ?", providerUserID).
		Scan(&settled).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bounty transactions: %w", err)
	}
	stats.TotalBountiesTriggered = settled.Count
	stats.TotalBountyAmount = settled.Total

	return stats, nil
}

// GetRoyaltyTransaction reads a row from the external royalty ledger
func (s *pgStore) GetRoyaltyTransaction(ctx context.Context, id int64) (*schema.RoyaltyTransaction, error) {
	var tx schema.RoyaltyTransaction
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoyaltyTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get royalty transaction: %w", err)
	}
	return &tx, nil
}

// GetVenuePostalCode looks up a venue's postal code; unknown venues are not an error
func (s *pgStore) GetVenuePostalCode(ctx context.Context, venueID int64) (string, bool, error) {
	var venue schema.Venue
	err := s.db.WithContext(ctx).Where("id = ?", venueID).First(&venue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get venue: %w", err)
	}
	return venue.PostalCode, true, nil
}

// CreateBountyTransaction inserts a settlement record with idempotency on
// royalty_transaction_id. The conflict target is the royalty reference only;
// a duplicate-key error that still surfaces is therefore a transaction_id
// collision and is mapped to domain.ErrBountyIDCollision for retry.
func (s *pgStore) CreateBountyTransaction(ctx context.Context, bt *schema.BountyTransaction) (*schema.BountyTransaction, bool, error) {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "royalty_transaction_id"}},
		DoNothing: true,
	}).Create(bt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, fmt.Errorf("%w: %s", domain.ErrBountyIDCollision, bt.TransactionID)
		}
		return nil, false, fmt.Errorf("failed to create bounty transaction: %w", err)
	}

	// ID 0 means this royalty transaction was already settled concurrently;
	// return the existing record instead of treating it as an error
	if bt.ID == 0 {
		var existing schema.BountyTransaction
		err := s.db.WithContext(ctx).
			Where("royalty_transaction_id = ?", bt.RoyaltyTransactionID).
			First(&existing).Error
		if err != nil {
			return nil, false, fmt.Errorf("failed to get existing bounty transaction: %w", err)
		}
		return &existing, false, nil
	}

	return bt, true, nil
}

// ListBountyTransactionsByProvider lists a provider's settlements, newest first
func (s *pgStore) ListBountyTransactionsByProvider(ctx context.Context, providerUserID int64, limit, offset int) ([]*schema.BountyTransaction, error) {
	var txs []*schema.BountyTransaction
	err := s.db.WithContext(ctx).
		Where("provider_user_id = ?", providerUserID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bounty transactions: %w", err)
	}
	return txs, nil
}

// Ping verifies database connectivity
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
