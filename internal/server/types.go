package server

import (
	"github.com/paramountfood/paramount/internal/repository"
	"github.com/paramountfood/paramount/internal/service"
)

// Repositories holds all repository instances
type Repositories struct {
	Inquiry     repository.InquiryRepository
	StatusCheck repository.StatusCheckRepository
}

// Services holds all service instances
type Services struct {
	Inquiry *service.InquiryService
	Status  *service.StatusService
}
