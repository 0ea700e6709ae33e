package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/paramountfood/paramount/internal/models"
)

var _ InquiryRepository = (*inquiryRepository)(nil)

// inquiryRepository implements InquiryRepository on top of sqlx
type inquiryRepository struct {
	db *sqlx.DB
}

// NewInquiryRepository creates a new InquiryRepository instance
func NewInquiryRepository(db *sqlx.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO contact_inquiries (id, name, email, subject, message, timestamp)
		VALUES (:id, :name, :email, :subject, :message, :timestamp)`, inquiry)
	if err != nil {
		return fmt.Errorf("failed to insert inquiry: %w", err)
	}
	return nil
}

func (r *inquiryRepository) Get(ctx context.Context, id string) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.db.GetContext(ctx, &inquiry, r.db.Rebind(`
		SELECT id, name, email, subject, message, timestamp
		FROM contact_inquiries WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inquiry %s: %w", id, err)
	}
	return &inquiry, nil
}

func (r *inquiryRepository) List(ctx context.Context, limit int) ([]*models.Inquiry, error) {
	if limit <= 0 {
		limit = 50
	}

	inquiries := []*models.Inquiry{}
	err := r.db.SelectContext(ctx, &inquiries, r.db.Rebind(`
		SELECT id, name, email, subject, message, timestamp
		FROM contact_inquiries
		ORDER BY timestamp DESC
		LIMIT ?`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return inquiries, nil
}

func (r *inquiryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM contact_inquiries`); err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return count, nil
}
