package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/paramountfood/paramount/internal/models"
)

var _ StatusCheckRepository = (*statusCheckRepository)(nil)

type statusCheckRepository struct {
	db *sqlx.DB
}

// NewStatusCheckRepository creates a new StatusCheckRepository instance
func NewStatusCheckRepository(db *sqlx.DB) StatusCheckRepository {
	return &statusCheckRepository{db: db}
}

func (r *statusCheckRepository) Create(ctx context.Context, check *models.StatusCheck) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO status_checks (id, client_name, timestamp)
		VALUES (:id, :client_name, :timestamp)`, check)
	if err != nil {
		return fmt.Errorf("failed to insert status check: %w", err)
	}
	return nil
}

func (r *statusCheckRepository) List(ctx context.Context, limit int) ([]*models.StatusCheck, error) {
	if limit <= 0 {
		limit = 1000
	}

	checks := []*models.StatusCheck{}
	err := r.db.SelectContext(ctx, &checks, r.db.Rebind(`
		SELECT id, client_name, timestamp
		FROM status_checks
		ORDER BY timestamp ASC
		LIMIT ?`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}
	return checks, nil
}
