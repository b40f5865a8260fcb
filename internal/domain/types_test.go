package domain_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatwave-audio/attribution-engine/internal/domain"
)

func TestSpikeMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		spike    int64
		baseline int64
		expected float64
	}{
		{name: "exact multiple", spike: 250, baseline: 100, expected: 2.5},
		{name: "below baseline", spike: 50, baseline: 100, expected: 0.5},
		{name: "rounds to two decimals", spike: 100, baseline: 3, expected: 33.33},
		{name: "rounds half up", spike: 125, baseline: 1000, expected: 0.13},
		{name: "equal volumes", spike: 77, baseline: 77, expected: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.SpikeMultiplier(tt.spike, tt.baseline))
		})
	}
}

func TestPercentOfCents(t *testing.T) {
	// 25% of $100.00 is $25.00
	assert.Equal(t, int64(2500), domain.PercentOfCents(10000, 25.0))
	// 2% of $25.00 is $0.50
	assert.Equal(t, int64(50), domain.PercentOfCents(2500, 2.0))
	// Rounds half away from zero: 25% of $0.02 is $0.01 (0.5 cents rounds up)
	assert.Equal(t, int64(1), domain.PercentOfCents(2, 25.0))
	// Zero amount yields zero
	assert.Equal(t, int64(0), domain.PercentOfCents(0, 25.0))
}

func TestNewBountyTransactionID(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	id, err := domain.NewBountyTransactionID(now)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^BOUNTY-20260315-[A-Z0-9]{6}$`), id)

	// Two IDs generated back to back should (overwhelmingly) differ
	other, err := domain.NewBountyTransactionID(now)
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestIsValidFailureType(t *testing.T) {
	assert.True(t, domain.IsValidFailureType(domain.FailureTypeDuplicateHash))
	assert.True(t, domain.IsValidFailureType(domain.FailureTypeDisputedData))
	assert.True(t, domain.IsValidFailureType(domain.FailureTypeManualReview))
	assert.False(t, domain.IsValidFailureType(domain.FailureType("bogus")))
	assert.False(t, domain.IsValidFailureType(domain.FailureType("")))
}
