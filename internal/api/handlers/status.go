package handlers

import (
	"net/http"

	"github.com/paramountfood/paramount/internal/api/constants"
	"github.com/paramountfood/paramount/internal/api/dto/common"
	"github.com/paramountfood/paramount/internal/api/dto/v1/status"
	"github.com/paramountfood/paramount/internal/models"
	"github.com/paramountfood/paramount/internal/service"
	"github.com/paramountfood/paramount/internal/utils"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	statusService *service.StatusService
}

func NewStatusHandler(statusService *service.StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

// Create records a status check from a client
func (h *StatusHandler) Create(c *gin.Context) {
	data, exists := c.Get(constants.ContextKeyStatusCheck)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Status check data not found in context")
		return
	}

	req, ok := data.(*status.CreateStatusCheckRequest)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Invalid status check data format")
		return
	}

	check, err := h.statusService.Create(c.Request.Context(), req.ClientName)
	if err != nil {
		handleServiceError(c, err, "Failed to record status check")
		return
	}

	utils.HandleSuccess(c, toStatusCheckResponse(check))
}

// List returns every recorded status check
func (h *StatusHandler) List(c *gin.Context) {
	checks, err := h.statusService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to load status checks")
		return
	}

	resp := make([]status.StatusCheckResponse, 0, len(checks))
	for _, check := range checks {
		resp = append(resp, toStatusCheckResponse(check))
	}
	utils.HandleSuccess(c, resp)
}

func toStatusCheckResponse(check *models.StatusCheck) status.StatusCheckResponse {
	return status.StatusCheckResponse{
		ID:         check.ID,
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp,
	}
}
