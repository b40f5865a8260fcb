package domain

import "errors"

var (
	// ErrRoyaltyTransactionNotFound is returned when the royalty ledger has no record for the given reference
	ErrRoyaltyTransactionNotFound = errors.New("royalty transaction not found")

	// ErrUploadNotFound is returned when a spin upload cannot be resolved
	ErrUploadNotFound = errors.New("upload not found")

	// ErrHeatSpikeNotFound is returned when a heat spike is not found
	ErrHeatSpikeNotFound = errors.New("heat spike not found")

	// ErrWindowNotFound is returned when an attribution window is not found
	ErrWindowNotFound = errors.New("attribution window not found")

	// ErrBountyIDCollision is returned when a generated bounty transaction ID
	// already exists; the settlement engine regenerates and retries
	ErrBountyIDCollision = errors.New("bounty transaction ID collision")

	// ErrInvalidFailureType is returned when a cemetery flag carries an unknown failure type
	ErrInvalidFailureType = errors.New("invalid failure type")
)
