package handlers

import (
	"net/http"

	"github.com/paramountfood/paramount/internal/api/constants"
	"github.com/paramountfood/paramount/internal/api/dto/common"
	"github.com/paramountfood/paramount/internal/api/dto/v1/contact"
	"github.com/paramountfood/paramount/internal/service"
	"github.com/paramountfood/paramount/internal/utils"

	"github.com/gin-gonic/gin"
)

const contactFailureMessage = "Failed to process inquiry"

type ContactHandler struct {
	inquiryService *service.InquiryService
}

func NewContactHandler(inquiryService *service.InquiryService) *ContactHandler {
	return &ContactHandler{
		inquiryService: inquiryService,
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	// Get contact data from context (set by validation middleware)
	contactData, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Contact data not found in context")
		return
	}

	contactPtr, ok := contactData.(*contact.ContactRequest)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Invalid contact data format")
		return
	}

	receipt, err := h.inquiryService.Submit(c.Request.Context(), service.ContactInput{
		Name:    contactPtr.Name,
		Email:   contactPtr.Email,
		Subject: contactPtr.Subject,
		Message: contactPtr.Message,
	})
	if err != nil {
		handleServiceError(c, err, contactFailureMessage)
		return
	}

	notified := receipt.Notified
	if notified == nil {
		notified = []string{}
	}

	utils.HandleSuccess(c, contact.ContactResponse{
		ID:        receipt.Inquiry.ID,
		Message:   "Your inquiry has been received. We will contact you soon.",
		EmailSent: receipt.EmailSent,
		Notified:  notified,
	})
}
