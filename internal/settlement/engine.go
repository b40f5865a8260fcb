package settlement

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/heatwave-audio/attribution-engine/internal/adapter"
	"github.com/heatwave-audio/attribution-engine/internal/domain"
	"github.com/heatwave-audio/attribution-engine/internal/geofence"
	"github.com/heatwave-audio/attribution-engine/internal/integrity"
	"github.com/heatwave-audio/attribution-engine/internal/logger"
	"github.com/heatwave-audio/attribution-engine/internal/store"
	"github.com/heatwave-audio/attribution-engine/internal/store/schema"
	"github.com/heatwave-audio/attribution-engine/internal/window"
)

// maxIDAttempts bounds transaction ID regeneration on collision. Collisions
// are vanishingly rare but must not be assumed impossible.
const maxIDAttempts = 5

// Config holds the engine's tunable knobs
type Config struct {
	// BountyPercentage is the provider's share of the platform fee
	BountyPercentage float64
}

// Engine settles discovery bounties. Given a royalty transaction it resolves
// the artist's active attribution window, applies the integrity and geofence
// checks, computes the fee split, and persists an immutable settlement
// record. Most royalty transactions have no active window; that path returns
// (nil, nil) and is not an error.
//
//go:generate mockgen -source=engine.go -destination=../mocks/settlement_engine.go -package=mocks -mock_names=Engine=MockSettlementEngine
type Engine interface {
	CalculateBounty(ctx context.Context, artistID, royaltyTransactionID int64) (*schema.BountyTransaction, error)
}

type engine struct {
	config   Config
	store    store.Store
	ledger   integrity.Ledger
	windows  window.Manager
	geofence geofence.Matcher
	clock    adapter.Clock
}

// NewEngine creates a bounty settlement engine
func NewEngine(cfg Config, st store.Store, ledger integrity.Ledger, windows window.Manager, matcher geofence.Matcher, clock adapter.Clock) Engine {
	return &engine{
		config:   cfg,
		store:    st,
		ledger:   ledger,
		windows:  windows,
		geofence: matcher,
		clock:    clock,
	}
}

// CalculateBounty settles one royalty transaction against the artist's
// active window, if any
func (e *engine) CalculateBounty(ctx context.Context, artistID, royaltyTransactionID int64) (*schema.BountyTransaction, error) {
	royalty, err := e.store.GetRoyaltyTransaction(ctx, royaltyTransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve royalty transaction %d: %w", royaltyTransactionID, err)
	}

	win, err := e.windows.GetActiveWindow(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if win == nil {
		// No active window: the common path for the vast majority of
		// royalty transactions
		return nil, nil
	}

	// A tainted source cannot earn a bounty even while its window is
	// nominally active
	spike, err := e.store.GetHeatSpikeByID(ctx, win.HeatSpikeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load spike for window %d: %w", win.ID, err)
	}
	tainted, err := e.ledger.IsTainted(ctx, spike.UploadID)
	if err != nil {
		return nil, fmt.Errorf("failed to check spike source integrity: %w", err)
	}
	if tainted {
		logger.WarnCtx(ctx, "Bounty blocked by tainted upload source",
			zap.Int64("artist_id", artistID),
			zap.Int64("window_id", win.ID),
			zap.Int64("upload_id", spike.UploadID),
			zap.Int64("royalty_transaction_id", royaltyTransactionID),
		)
		return nil, nil
	}

	// Split the platform fee. The operations share is derived by subtraction
	// so the conservation invariant holds exactly in cents.
	bountyAmount := domain.PercentOfCents(royalty.PlatformFeeGross, e.config.BountyPercentage)
	ngnOperationsAmount := royalty.PlatformFeeGross - bountyAmount

	match, err := e.geofence.CheckMatch(ctx, win.HeatSpikeID, royalty.VenueID)
	if err != nil {
		return nil, err
	}

	// The geofence bonus is computed from the pre-bonus bounty, folded into
	// the persisted bounty amount, and paid from platform margin - it never
	// reduces the operations share
	var bonusAmount int64
	var matchedZip *string
	if match.Matched {
		bonusAmount = domain.PercentOfCents(bountyAmount, match.BonusPercentage)
		bountyAmount += bonusAmount
		zip := match.MatchedZipCode
		matchedZip = &zip
	}

	bt := &schema.BountyTransaction{
		RoyaltyTransactionID:    royaltyTransactionID,
		AttributionWindowID:     win.ID,
		HeatSpikeID:             win.HeatSpikeID,
		ArtistID:                artistID,
		ProviderUserID:          win.ProviderUserID,
		PlatformFeeGross:        royalty.PlatformFeeGross,
		BountyPercentage:        e.config.BountyPercentage,
		BountyAmount:            bountyAmount,
		NGNOperationsAmount:     ngnOperationsAmount,
		GeofenceMatched:         match.Matched,
		GeofenceBonusPercentage: match.BonusPercentage,
		GeofenceBonusAmount:     bonusAmount,
		VenueID:                 royalty.VenueID,
		MatchedZipCode:          matchedZip,
		Status:                  domain.SettlementStatusPending,
	}

	rec, created, err := e.persistWithFreshID(ctx, bt)
	if err != nil {
		return nil, err
	}

	if created {
		logger.InfoCtx(ctx, "Bounty settled",
			zap.String("transaction_id", rec.TransactionID),
			zap.Int64("royalty_transaction_id", royaltyTransactionID),
			zap.Int64("artist_id", artistID),
			zap.Int64("provider_user_id", rec.ProviderUserID),
			zap.Int64("bounty_amount", rec.BountyAmount),
			zap.Int64("ngn_operations_amount", rec.NGNOperationsAmount),
			zap.Bool("geofence_matched", rec.GeofenceMatched),
		)
	} else {
		logger.InfoCtx(ctx, "Royalty transaction already settled",
			zap.String("transaction_id", rec.TransactionID),
			zap.Int64("royalty_transaction_id", royaltyTransactionID),
		)
	}

	return rec, nil
}

// persistWithFreshID inserts the settlement record, regenerating the
// transaction ID when a collision slips past the uniqueness check
func (e *engine) persistWithFreshID(ctx context.Context, bt *schema.BountyTransaction) (*schema.BountyTransaction, bool, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := domain.NewBountyTransactionID(e.clock.Now())
		if err != nil {
			return nil, false, err
		}
		bt.TransactionID = id

		rec, created, err := e.store.CreateBountyTransaction(ctx, bt)
		if err == nil {
			return rec, created, nil
		}
		if !errors.Is(err, domain.ErrBountyIDCollision) {
			return nil, false, err
		}
	}
	return nil, false, fmt.Errorf("failed to generate a unique bounty transaction ID after %d attempts", maxIDAttempts)
}
