package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heatwave-audio/attribution-engine/internal/domain"
	"github.com/heatwave-audio/attribution-engine/internal/integrity"
	"github.com/heatwave-audio/attribution-engine/internal/store"
	"github.com/heatwave-audio/attribution-engine/internal/window"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetProviderStatistics returns a provider's attribution dashboard counters
	// GET /api/v1/providers/:provider_id/statistics
	GetProviderStatistics(c *gin.Context)

	// ListProviderSettlements lists a provider's bounty transactions, newest first
	// GET /api/v1/providers/:provider_id/settlements?limit=<limit>&offset=<offset>
	ListProviderSettlements(c *gin.Context)

	// GetArtistActiveWindow returns the artist's currently active attribution
	// window, or 404 when none is active
	// GET /api/v1/artists/:artist_id/window
	GetArtistActiveWindow(c *gin.Context)

	// ListArtistSpikes lists an artist's heat spikes, newest first
	// GET /api/v1/artists/:artist_id/spikes?limit=<limit>&offset=<offset>
	ListArtistSpikes(c *gin.Context)

	// FlagUpload records an integrity failure against an upload (requires authentication)
	// POST /api/v1/integrity/flags
	FlagUpload(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store   store.Store
	windows window.Manager
	ledger  integrity.Ledger
}

// NewHandler creates a new REST API handler
func NewHandler(st store.Store, windows window.Manager, ledger integrity.Ledger) Handler {
	return &handler{
		store:   st,
		windows: windows,
		ledger:  ledger,
	}
}

// GetProviderStatistics returns a provider's attribution dashboard counters
func (h *handler) GetProviderStatistics(c *gin.Context) {
	providerUserID, err := parseIDParam(c, "provider_id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	stats, err := h.windows.ProviderStatistics(c.Request.Context(), providerUserID)
	if err != nil {
		respondInternalError(c, err, "Failed to get provider statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListProviderSettlements lists a provider's bounty transactions
func (h *handler) ListProviderSettlements(c *gin.Context) {
	providerUserID, err := parseIDParam(c, "provider_id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	limit, offset, err := parsePagination(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	settlements, err := h.store.ListBountyTransactionsByProvider(c.Request.Context(), providerUserID, limit, offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list settlements")
		return
	}

	items := make([]SettlementResponse, 0, len(settlements))
	for _, bt := range settlements {
		items = append(items, toSettlementResponse(bt))
	}

	c.JSON(http.StatusOK, gin.H{
		"settlements": items,
		"limit":       limit,
		"offset":      offset,
	})
}

// GetArtistActiveWindow returns the artist's currently active attribution window
func (h *handler) GetArtistActiveWindow(c *gin.Context) {
	artistID, err := parseIDParam(c, "artist_id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	w, err := h.windows.GetActiveWindow(c.Request.Context(), artistID)
	if err != nil {
		respondInternalError(c, err, "Failed to get active window")
		return
	}
	if w == nil {
		respondNotFound(c, "No active attribution window")
		return
	}

	c.JSON(http.StatusOK, toWindowResponse(w))
}

// ListArtistSpikes lists an artist's heat spikes
func (h *handler) ListArtistSpikes(c *gin.Context) {
	artistID, err := parseIDParam(c, "artist_id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	limit, offset, err := parsePagination(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	spikes, err := h.store.ListHeatSpikesByArtist(c.Request.Context(), artistID, limit, offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list heat spikes")
		return
	}

	items := make([]SpikeResponse, 0, len(spikes))
	for _, s := range spikes {
		items = append(items, toSpikeResponse(s))
	}

	c.JSON(http.StatusOK, gin.H{
		"spikes": items,
		"limit":  limit,
		"offset": offset,
	})
}

// FlagUpload records an integrity failure against an upload
func (h *handler) FlagUpload(c *gin.Context) {
	var req FlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	detectedBy := req.DetectedBy
	if detectedBy == "" {
		// Fall back to the authenticated subject from the auth middleware
		detectedBy = c.GetString("auth_subject")
	}

	rec, err := h.ledger.Flag(c.Request.Context(), integrity.FlagInput{
		UploadID:     req.UploadID,
		FailureType:  domain.FailureType(req.FailureType),
		ExpectedHash: req.ExpectedHash,
		ActualHash:   req.ActualHash,
		ArtistName:   req.ArtistName,
		DetectedBy:   detectedBy,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFailureType) {
			respondValidationError(c, err.Error())
			return
		}
		respondInternalError(c, err, "Failed to flag upload")
		return
	}

	c.JSON(http.StatusCreated, FlagResponse{
		ID:          rec.ID,
		UploadID:    rec.UploadID,
		FailureType: rec.FailureType,
		DetectedBy:  rec.DetectedBy,
		CreatedAt:   rec.CreatedAt,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
