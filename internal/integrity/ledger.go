package integrity

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/heatwave-audio/attribution-engine/internal/domain"
	"github.com/heatwave-audio/attribution-engine/internal/logger"
	"github.com/heatwave-audio/attribution-engine/internal/store"
	"github.com/heatwave-audio/attribution-engine/internal/store/schema"
)

// FlagInput describes one integrity failure to record against an upload
type FlagInput struct {
	UploadID     int64
	FailureType  domain.FailureType
	ExpectedHash string
	ActualHash   string
	ArtistName   string
	DetectedBy   string
}

// Ledger is the cemetery of known-bad upload sources. Every component that
// trusts spin data consults it first. Flagging fails closed: a persistence
// error surfaces to the caller rather than letting a taint pass silently.
//
//go:generate mockgen -source=ledger.go -destination=../mocks/integrity_ledger.go -package=mocks -mock_names=Ledger=MockIntegrityLedger
type Ledger interface {
	// IsTainted reports whether the upload has been disqualified
	IsTainted(ctx context.Context, uploadID int64) (bool, error)
	// Flag records an integrity failure for an upload. Idempotent per
	// (upload_id, failure_type): flagging twice returns the existing record.
	Flag(ctx context.Context, input FlagInput) (*schema.CemeteryRecord, error)
}

type ledger struct {
	store store.Store
}

// NewLedger creates a store-backed integrity ledger
func NewLedger(st store.Store) Ledger {
	return &ledger{store: st}
}

// IsTainted reports whether the upload has been disqualified
func (l *ledger) IsTainted(ctx context.Context, uploadID int64) (bool, error) {
	tainted, err := l.store.IsUploadTainted(ctx, uploadID)
	if err != nil {
		return false, fmt.Errorf("failed to check upload integrity: %w", err)
	}
	return tainted, nil
}

// Flag records an integrity failure for an upload
func (l *ledger) Flag(ctx context.Context, input FlagInput) (*schema.CemeteryRecord, error) {
	if !domain.IsValidFailureType(input.FailureType) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFailureType, input.FailureType)
	}

	rec, err := l.store.CreateCemeteryRecord(ctx, &schema.CemeteryRecord{
		UploadID:     input.UploadID,
		FailureType:  input.FailureType,
		ExpectedHash: input.ExpectedHash,
		ActualHash:   input.ActualHash,
		ArtistName:   input.ArtistName,
		DetectedBy:   input.DetectedBy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to flag upload %d: %w", input.UploadID, err)
	}

	logger.InfoCtx(ctx, "Upload flagged into cemetery",
		zap.Int64("upload_id", input.UploadID),
		zap.String("failure_type", string(input.FailureType)),
		zap.String("detected_by", input.DetectedBy),
	)

	return rec, nil
}
