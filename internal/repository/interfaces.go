package repository

import (
	"context"

	"github.com/paramountfood/paramount/internal/models"
)

// InquiryRepository defines the interface for contact inquiry storage.
// The store is append-only: there is no update or delete.
type InquiryRepository interface {
	// Create inserts a new inquiry
	Create(ctx context.Context, inquiry *models.Inquiry) error
	// Get returns an inquiry by ID
	Get(ctx context.Context, id string) (*models.Inquiry, error)
	// List returns the most recent inquiries, newest first
	List(ctx context.Context, limit int) ([]*models.Inquiry, error)
	// Count returns the total number of inquiries
	Count(ctx context.Context) (int64, error)
}

// StatusCheckRepository defines the interface for status check storage
type StatusCheckRepository interface {
	// Create inserts a new status check
	Create(ctx context.Context, check *models.StatusCheck) error
	// List returns up to limit status checks, oldest first
	List(ctx context.Context, limit int) ([]*models.StatusCheck, error)
}
