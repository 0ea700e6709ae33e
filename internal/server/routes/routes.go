package routes

import (
	"github.com/paramountfood/paramount/internal/api/middleware"
	"github.com/paramountfood/paramount/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetGlobalLogger()

	api := router.Group("/api")

	// Health and index (no body)
	SetupHealthRoutes(router, api, h.Health)

	// Contact routes (public)
	SetupContactRoutes(api, h.Contact, m)

	// Status check routes (public)
	SetupStatusRoutes(api, h.Status, m)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, corsOrigins []string) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(corsOrigins))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.PreserveRequestBody(middleware.DefaultMaxBodySize))
}
