package routes

import (
	"github.com/paramountfood/paramount/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	router.POST("/contact",
		m.Validation.ValidateContactRequest(),
		contact.Submit,
	)
}
