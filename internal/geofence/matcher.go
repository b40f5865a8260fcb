package geofence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heatwave-audio/attribution-engine/internal/domain"
	"github.com/heatwave-audio/attribution-engine/internal/store"
)

// Matcher decides whether a revenue event's venue falls inside the broadcast
// footprint recorded on a heat spike. Pure lookup, no side effects; an
// unknown venue is a non-match, never an error.
//
//go:generate mockgen -source=matcher.go -destination=../mocks/geofence_matcher.go -package=mocks -mock_names=Matcher=MockGeofenceMatcher
type Matcher interface {
	CheckMatch(ctx context.Context, heatSpikeID int64, venueID *int64) (domain.GeofenceMatch, error)
}

type matcher struct {
	store           store.Store
	bonusPercentage float64
}

// NewMatcher creates a geofence matcher with the configured bonus percentage
func NewMatcher(st store.Store, bonusPercentage float64) Matcher {
	return &matcher{store: st, bonusPercentage: bonusPercentage}
}

// CheckMatch looks up the venue's postal code and tests membership in the
// spike's zip code set
func (m *matcher) CheckMatch(ctx context.Context, heatSpikeID int64, venueID *int64) (domain.GeofenceMatch, error) {
	noMatch := domain.GeofenceMatch{Matched: false, BonusPercentage: 0.0}

	if venueID == nil {
		return noMatch, nil
	}

	postalCode, ok, err := m.store.GetVenuePostalCode(ctx, *venueID)
	if err != nil {
		return noMatch, fmt.Errorf("failed to look up venue %d: %w", *venueID, err)
	}
	if !ok || postalCode == "" {
		return noMatch, nil
	}

	spike, err := m.store.GetHeatSpikeByID(ctx, heatSpikeID)
	if err != nil {
		return noMatch, fmt.Errorf("failed to load heat spike %d: %w", heatSpikeID, err)
	}

	var zipCodes []string
	if len(spike.ZipCodes) > 0 {
		if err := json.Unmarshal(spike.ZipCodes, &zipCodes); err != nil {
			return noMatch, fmt.Errorf("failed to decode spike zip codes: %w", err)
		}
	}

	for _, zip := range zipCodes {
		if zip == postalCode {
			return domain.GeofenceMatch{
				Matched:         true,
				BonusPercentage: m.bonusPercentage,
				MatchedZipCode:  postalCode,
			}, nil
		}
	}

	return noMatch, nil
}
