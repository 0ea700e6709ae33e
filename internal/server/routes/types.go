package routes

import (
	"github.com/paramountfood/paramount/internal/api/handlers"
	"github.com/paramountfood/paramount/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Health  *handlers.HealthHandler
	Contact *handlers.ContactHandler
	Status  *handlers.StatusHandler
}

// Middleware contains all the middleware
type Middleware struct {
	Validation *middleware.ValidationMiddleware
}
