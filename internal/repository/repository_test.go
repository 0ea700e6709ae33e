package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/paramountfood/paramount/internal/db"
	"github.com/paramountfood/paramount/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Open(context.Background(), db.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return database.DB
}

func TestInquiryRepository(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)

	t.Run("should return an empty list when there are no inquiries", func(t *testing.T) {
		repo := NewInquiryRepository(setupTestDB(t))

		got, err := repo.List(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, got)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("should round trip an inquiry", func(t *testing.T) {
		repo := NewInquiryRepository(setupTestDB(t))
		want := &models.Inquiry{
			ID:        "00000000-0000-0000-0000-000000000001",
			Name:      "A",
			Email:     "a@x.com",
			Subject:   "S",
			Message:   "M",
			Timestamp: base,
		}

		require.NoError(t, repo.Create(ctx, want))

		got, err := repo.Get(ctx, want.ID)
		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Email, got.Email)
		assert.Equal(t, want.Subject, got.Subject)
		assert.Equal(t, want.Message, got.Message)
		assert.True(t, want.Timestamp.Equal(got.Timestamp), "timestamp %v != %v", got.Timestamp, want.Timestamp)
	})

	t.Run("should reject a duplicate id", func(t *testing.T) {
		repo := NewInquiryRepository(setupTestDB(t))
		inquiry := &models.Inquiry{ID: "dup", Name: "A", Email: "a@x.com", Subject: "S", Message: "M", Timestamp: base}

		require.NoError(t, repo.Create(ctx, inquiry))
		assert.Error(t, repo.Create(ctx, inquiry))
	})

	t.Run("should return ErrNotFound for a missing id", func(t *testing.T) {
		repo := NewInquiryRepository(setupTestDB(t))

		_, err := repo.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("should list newest first and honour the limit", func(t *testing.T) {
		repo := NewInquiryRepository(setupTestDB(t))
		for i, id := range []string{"first", "second", "third"} {
			require.NoError(t, repo.Create(ctx, &models.Inquiry{
				ID: id, Name: "A", Email: "a@x.com", Subject: "S", Message: "M",
				Timestamp: base.Add(time.Duration(i) * time.Minute),
			}))
		}

		got, err := repo.List(ctx, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "third", got[0].ID)
		assert.Equal(t, "second", got[1].ID)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestStatusCheckRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStatusCheckRepository(setupTestDB(t))
	base := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &models.StatusCheck{ID: "b", ClientName: "later", Timestamp: base.Add(time.Second)}))
	require.NoError(t, repo.Create(ctx, &models.StatusCheck{ID: "a", ClientName: "earlier", Timestamp: base}))

	got, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "earlier", got[0].ClientName)
	assert.Equal(t, "later", got[1].ClientName)
}
