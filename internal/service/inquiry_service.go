package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/paramountfood/paramount/internal/logging"
	"github.com/paramountfood/paramount/internal/models"
	"github.com/paramountfood/paramount/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/paramountfood/paramount/internal/service"

// Inquiry outcomes recorded on the submit span
const (
	OutcomeAccepted           = "accepted"
	OutcomeValidationRejected = "validation_rejected"
	OutcomePersistenceFailed  = "persistence_failed"
)

// ContactInput is an inquiry as received from a client
type ContactInput struct {
	Name    string `json:"name" validate:"required,notblank"`
	Email   string `json:"email" validate:"required,notblank,email"`
	Subject string `json:"subject" validate:"required,notblank"`
	Message string `json:"message" validate:"required,notblank"`
}

// InquiryReceipt is returned for an accepted inquiry
type InquiryReceipt struct {
	Inquiry   *models.Inquiry
	Notified  []string
	EmailSent bool
}

// InquiryService validates, stores and announces contact inquiries.
// It holds no per-request state; the repository is the only shared resource.
type InquiryService struct {
	repo       repository.InquiryRepository
	dispatcher *NotificationDispatcher
	validate   *validator.Validate
	logger     *logging.Logger
	now        func() time.Time
	newID      func() string
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(repo repository.InquiryRepository, dispatcher *NotificationDispatcher) *InquiryService {
	if dispatcher == nil {
		dispatcher = NewNotificationDispatcher()
	}
	return &InquiryService{
		repo:       repo,
		dispatcher: dispatcher,
		validate:   newValidator(),
		logger:     logging.GetGlobalLogger(),
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

// Submit validates the input, persists a new inquiry and notifies staff.
// Identical inputs always create distinct records.
func (s *InquiryService) Submit(ctx context.Context, input ContactInput) (*InquiryReceipt, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "InquiryService.Submit")
	defer span.End()

	input = ContactInput{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
	}

	if err := validateStruct(s.validate, input); err != nil {
		span.SetAttributes(attribute.String("inquiry.outcome", OutcomeValidationRejected))
		span.SetStatus(codes.Error, "validation failed")
		s.logger.Warn("[inquiry:validation] rejected submission: %v", err)
		return nil, err
	}

	inquiry := &models.Inquiry{
		ID:        s.newID(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Timestamp: s.now(),
	}
	span.SetAttributes(attribute.String("inquiry.id", inquiry.ID))

	if err := s.repo.Create(ctx, inquiry); err != nil {
		span.SetAttributes(attribute.String("inquiry.outcome", OutcomePersistenceFailed))
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		s.logger.Error("[inquiry:persistence] failed to store inquiry %s: %v", inquiry.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	notified := s.dispatcher.Dispatch(ctx, inquiry)
	span.SetAttributes(
		attribute.String("inquiry.outcome", OutcomeAccepted),
		attribute.StringSlice("inquiry.notified", notified),
	)
	s.logger.Info("[inquiry] stored inquiry %s from %s", inquiry.ID, inquiry.Email)

	return &InquiryReceipt{
		Inquiry:   inquiry,
		Notified:  notified,
		EmailSent: slices.Contains(notified, ChannelEmail),
	}, nil
}

// Recent returns the latest inquiries, newest first
func (s *InquiryService) Recent(ctx context.Context, limit int) ([]*models.Inquiry, error) {
	inquiries, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return inquiries, nil
}

// Get returns one inquiry by ID
func (s *InquiryService) Get(ctx context.Context, id string) (*models.Inquiry, error) {
	inquiry, err := s.repo.Get(ctx, strings.TrimSpace(id))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("inquiry %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return inquiry, nil
}

// Count returns the number of stored inquiries
func (s *InquiryService) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return count, nil
}
