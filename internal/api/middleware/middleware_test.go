package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/paramountfood/paramount/internal/logging"
	"github.com/stretchr/testify/assert"

	"github.com/gin-gonic/gin"
)

func newTestRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw...)
	router.Any("/api/contact", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantStatus int
		wantHeader string
	}{
		{name: "listed origin", allowed: []string{"https://paramount.example"}, origin: "https://paramount.example", method: http.MethodPost, wantStatus: http.StatusOK, wantHeader: "https://paramount.example"},
		{name: "wildcard", allowed: []string{"*"}, origin: "https://other.example", method: http.MethodPost, wantStatus: http.StatusOK, wantHeader: "https://other.example"},
		{name: "unlisted origin", allowed: []string{"https://paramount.example"}, origin: "https://evil.example", method: http.MethodPost, wantStatus: http.StatusForbidden},
		{name: "no origin", allowed: []string{"https://paramount.example"}, method: http.MethodPost, wantStatus: http.StatusOK},
		{name: "preflight", allowed: []string{"*"}, origin: "https://paramount.example", method: http.MethodOptions, wantStatus: http.StatusNoContent, wantHeader: "https://paramount.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(CORS(tt.allowed))
			req := httptest.NewRequest(tt.method, "/api/contact", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantHeader, w.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantStatus == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), "FORBIDDEN")
			}
		})
	}
}

func TestPreserveRequestBody(t *testing.T) {
	t.Run("should reject oversized bodies", func(t *testing.T) {
		router := newTestRouter(PreserveRequestBody(16))
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(strings.Repeat("x", 17)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "PAYLOAD_TOO_LARGE")
	})

	t.Run("should leave the body readable for handlers", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(PreserveRequestBody(16))
		router.POST("/echo", func(c *gin.Context) {
			body, _ := c.GetRawData()
			c.String(http.StatusOK, string(body))
		})

		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"a":1}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"a":1}`, w.Body.String())
	})
}

func TestRequestID(t *testing.T) {
	router := newTestRouter(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)

	req = httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery(logging.NewWriterLogger(&buf, "INFO")))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_SERVER_ERROR")
	assert.NotContains(t, w.Body.String(), "boom")
	assert.Contains(t, buf.String(), "boom")
}

func TestSecurityHeaders(t *testing.T) {
	router := newTestRouter(SecurityHeaders())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contact", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
