package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Waschdachs-Git/RepFinder/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/products", handler.GetProducts)
		api.GET("/suggest", handler.Suggest)
		api.GET("/meta", handler.GetMeta)

		api.GET("/clicks", handler.GetClicks)
		api.POST("/clicks", handler.PostClick)

		api.POST("/contact", handler.PostContact)
	}

	return router
}
