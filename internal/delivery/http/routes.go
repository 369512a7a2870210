package http

import (
	"github.com/gin-gonic/gin"
	"github.com/shopstation/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		lists := v1.Group("/lists")
		{
			lists.POST("/match", handler.MatchList)
		}

		prices := v1.Group("/prices")
		{
			prices.POST("/compare", handler.ComparePrices)
		}

		v1.POST("/feedback", handler.RecordFeedback)
		v1.GET("/stores", handler.ListStores)
	}

	return router
}
