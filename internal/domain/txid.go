package domain

import (
	"crypto/rand"
	"fmt"
	"time"
)

// bountyIDAlphabet is the character set for the random suffix of a bounty
// transaction ID. Uppercase plus digits keeps the IDs readable on statements.
const bountyIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const bountyIDSuffixLen = 6

// NewBountyTransactionID generates a human-readable settlement reference in
// the format BOUNTY-YYYYMMDD-XXXXXX. The suffix is drawn from crypto/rand;
// uniqueness is still enforced by the store, and callers must retry on
// collision rather than assume the suffix is unique.
func NewBountyTransactionID(now time.Time) (string, error) {
	buf := make([]byte, bountyIDSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate bounty transaction ID: %w", err)
	}
	for i, b := range buf {
		buf[i] = bountyIDAlphabet[int(b)%len(bountyIDAlphabet)]
	}
	return fmt.Sprintf("BOUNTY-%s-%s", now.UTC().Format("20060102"), string(buf)), nil
}
