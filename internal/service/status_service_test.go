package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/paramountfood/paramount/internal/db"
	"github.com/paramountfood/paramount/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusService(t *testing.T) {
	ctx := context.Background()
	database, err := db.Open(ctx, db.DriverSQLite, filepath.Join(t.TempDir(), "status.db"))
	require.NoError(t, err)
	defer database.Close()

	svc := NewStatusService(repository.NewStatusCheckRepository(database.DB))

	t.Run("should reject a blank client name", func(t *testing.T) {
		_, err := svc.Create(ctx, "  ")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("should store and list checks", func(t *testing.T) {
		check, err := svc.Create(ctx, "probe")
		require.NoError(t, err)
		assert.NotEmpty(t, check.ID)
		assert.Equal(t, "probe", check.ClientName)

		checks, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, checks, 1)
		assert.Equal(t, check.ID, checks[0].ID)
	})
}
