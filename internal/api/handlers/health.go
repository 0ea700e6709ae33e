package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/paramountfood/paramount/internal/api/dto/common"
	"github.com/paramountfood/paramount/internal/utils"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *db.Database
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		utils.HandleAPIError(c, err, http.StatusServiceUnavailable, common.ErrCodeServiceDegraded, "Database connection error")
		return
	}

	c.JSON(http.StatusOK, common.NewMessageResponse("Health check OK"))
}

// Root answers the API index
func (h *HealthHandler) Root(c *gin.Context) {
	utils.HandleMessage(c, "Hello World")
}
