package routes

import (
	"github.com/paramountfood/paramount/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupHealthRoutes configures health check endpoints
func SetupHealthRoutes(router *gin.Engine, api *gin.RouterGroup, health *handlers.HealthHandler) {
	router.GET("/health", health.Check)
	api.GET("/", health.Root)
}
