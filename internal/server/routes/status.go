package routes

import (
	"github.com/paramountfood/paramount/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupStatusRoutes configures status check routes
func SetupStatusRoutes(router *gin.RouterGroup, status *handlers.StatusHandler, m *Middleware) {
	group := router.Group("/status")
	{
		group.POST("", m.Validation.ValidateStatusCheckRequest(), status.Create)
		group.GET("", status.List)
	}
}
