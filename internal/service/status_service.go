package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paramountfood/paramount/internal/models"
	"github.com/paramountfood/paramount/internal/repository"
)

// StatusService records and lists client status checks
type StatusService struct {
	repo repository.StatusCheckRepository
	now  func() time.Time
}

// NewStatusService creates a new status service
func NewStatusService(repo repository.StatusCheckRepository) *StatusService {
	return &StatusService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a status check for clientName
func (s *StatusService) Create(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: "client_name", Reason: "required"}}}
	}

	check := &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  s.now(),
	}
	if err := s.repo.Create(ctx, check); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return check, nil
}

// List returns stored status checks, oldest first
func (s *StatusService) List(ctx context.Context) ([]*models.StatusCheck, error) {
	checks, err := s.repo.List(ctx, 1000)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return checks, nil
}
