package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/heatwave-audio/attribution-engine/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Provider reporting endpoints (public read access)
		v1.GET("/providers/:provider_id/statistics", handler.GetProviderStatistics)
		v1.GET("/providers/:provider_id/settlements", handler.ListProviderSettlements)

		// Artist reporting endpoints (public read access)
		v1.GET("/artists/:artist_id/window", handler.GetArtistActiveWindow)
		v1.GET("/artists/:artist_id/spikes", handler.ListArtistSpikes)

		// Integrity flagging (requires authentication, fraud-ops only)
		v1.POST("/integrity/flags", middleware.Auth(authCfg), handler.FlagUpload)
	}
}
