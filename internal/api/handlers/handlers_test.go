package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paramountfood/paramount/internal/api/dto/common"
	"github.com/paramountfood/paramount/internal/api/middleware"
	"github.com/paramountfood/paramount/internal/db"
	"github.com/paramountfood/paramount/internal/models"
	"github.com/paramountfood/paramount/internal/repository"
	"github.com/paramountfood/paramount/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gin-gonic/gin"
)

type failingInquiryRepository struct {
	repository.InquiryRepository
}

func (failingInquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	return errors.New("pq: relation \"contact_inquiries\" does not exist")
}

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string                   `json:"code"`
		Message string                   `json:"message"`
		Details []common.ValidationError `json:"details"`
	} `json:"error"`
}

func setupTestDB(t *testing.T) *db.Database {
	t.Helper()
	database, err := db.Open(context.Background(), db.DriverSQLite, filepath.Join(t.TempDir(), "handlers.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func newContactRouter(repo repository.InquiryRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.PreserveRequestBody(middleware.DefaultMaxBodySize))

	validation := middleware.NewValidationMiddleware()
	handler := NewContactHandler(service.NewInquiryService(repo, nil))
	router.POST("/api/contact", validation.ValidateContactRequest(), handler.Submit)
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestContactHandler_Submit(t *testing.T) {
	t.Run("should persist a valid inquiry and acknowledge it", func(t *testing.T) {
		database := setupTestDB(t)
		repo := repository.NewInquiryRepository(database.DB)
		router := newContactRouter(repo)

		w, env := doJSON(t, router, http.MethodPost, "/api/contact",
			`{"name":"A","email":"a@x.com","subject":"S","message":"M"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)

		var data struct {
			ID        string   `json:"id"`
			Message   string   `json:"message"`
			EmailSent bool     `json:"email_sent"`
			Notified  []string `json:"notified"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.NotEmpty(t, data.ID)
		assert.NotEmpty(t, data.Message)
		assert.False(t, data.EmailSent)
		assert.Empty(t, data.Notified)

		stored, err := repo.Get(context.Background(), data.ID)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", stored.Email)
		assert.False(t, stored.Timestamp.IsZero())
	})

	t.Run("should create distinct records for identical payloads", func(t *testing.T) {
		database := setupTestDB(t)
		repo := repository.NewInquiryRepository(database.DB)
		router := newContactRouter(repo)
		body := `{"name":"A","email":"a@x.com","subject":"S","message":"M"}`

		_, first := doJSON(t, router, http.MethodPost, "/api/contact", body)
		_, second := doJSON(t, router, http.MethodPost, "/api/contact", body)
		assert.NotEqual(t, string(first.Data), string(second.Data))

		count, err := repo.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("should reject an empty message without storing anything", func(t *testing.T) {
		database := setupTestDB(t)
		repo := repository.NewInquiryRepository(database.DB)
		router := newContactRouter(repo)

		w, env := doJSON(t, router, http.MethodPost, "/api/contact",
			`{"name":"A","email":"a@x.com","subject":"S","message":"   "}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, string(common.ErrCodeValidation), env.Error.Code)
		require.Len(t, env.Error.Details, 1)
		assert.Equal(t, "message", env.Error.Details[0].Field)
		assert.Equal(t, "required", env.Error.Details[0].Reason)

		count, err := repo.Count(context.Background())
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("should accept fields padded with whitespace and store them trimmed", func(t *testing.T) {
		database := setupTestDB(t)
		repo := repository.NewInquiryRepository(database.DB)
		router := newContactRouter(repo)

		w, env := doJSON(t, router, http.MethodPost, "/api/contact",
			`{"name":" A ","email":" a@x.com ","subject":"S\n","message":"\tM"}`)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var data struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))

		stored, err := repo.Get(context.Background(), data.ID)
		require.NoError(t, err)
		assert.Equal(t, "A", stored.Name)
		assert.Equal(t, "a@x.com", stored.Email)
		assert.Equal(t, "S", stored.Subject)
		assert.Equal(t, "M", stored.Message)
	})

	t.Run("should reject a malformed email", func(t *testing.T) {
		router := newContactRouter(repository.NewInquiryRepository(setupTestDB(t).DB))

		w, env := doJSON(t, router, http.MethodPost, "/api/contact",
			`{"name":"A","email":"not-an-email","subject":"S","message":"M"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.NotNil(t, env.Error)
		require.Len(t, env.Error.Details, 1)
		assert.Equal(t, "email", env.Error.Details[0].Field)
		assert.Equal(t, "email", env.Error.Details[0].Reason)
	})

	t.Run("should answer 400 for undecodable JSON", func(t *testing.T) {
		router := newContactRouter(repository.NewInquiryRepository(setupTestDB(t).DB))

		w, env := doJSON(t, router, http.MethodPost, "/api/contact", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, string(common.ErrCodeBadRequest), env.Error.Code)
	})

	t.Run("should hide persistence failures behind a generic message", func(t *testing.T) {
		router := newContactRouter(failingInquiryRepository{})

		w, env := doJSON(t, router, http.MethodPost, "/api/contact",
			`{"name":"A","email":"a@x.com","subject":"S","message":"M"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, string(common.ErrCodeInternalServer), env.Error.Code)
		assert.Equal(t, "Failed to process inquiry", env.Error.Message)
		assert.Empty(t, env.Error.Details)
		assert.NotContains(t, w.Body.String(), "contact_inquiries")
	})
}

func TestStatusHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	database := setupTestDB(t)
	handler := NewStatusHandler(service.NewStatusService(repository.NewStatusCheckRepository(database.DB)))
	validation := middleware.NewValidationMiddleware()

	router := gin.New()
	router.POST("/api/status", validation.ValidateStatusCheckRequest(), handler.Create)
	router.GET("/api/status", handler.List)

	w, env := doJSON(t, router, http.MethodPost, "/api/status", `{"client_name":"probe"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	w, env = doJSON(t, router, http.MethodPost, "/api/status", `{"client_name":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, env = doJSON(t, router, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, w.Code)

	var checks []struct {
		ID         string `json:"id"`
		ClientName string `json:"client_name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &checks))
	require.Len(t, checks, 1)
	assert.Equal(t, "probe", checks[0].ClientName)
	assert.NotEmpty(t, checks[0].ID)
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		pingErr  error
		wantCode int
	}{
		{name: "healthy database", wantCode: http.StatusOK},
		{name: "unreachable database", pingErr: errors.New("connection refused"), wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			handler := NewHealthHandler(stubPinger{err: tt.pingErr})
			router.GET("/health", handler.Check)

			w, env := doJSON(t, router, http.MethodGet, "/health", "")
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.pingErr == nil, env.Success)
		})
	}

	t.Run("root says hello", func(t *testing.T) {
		router := gin.New()
		router.GET("/api/", NewHealthHandler(stubPinger{}).Root)

		w, env := doJSON(t, router, http.MethodGet, "/api/", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Hello World"}`, string(env.Data))
	})
}
