package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 465, cfg.Notify.SMTPPort)
	assert.Equal(t, "info.paramountfoodcorporation@gmail.com", cfg.Notify.RecipientEmail)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.LogRequests)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))
	t.Setenv("ENV", "production")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/paramount?sslmode=disable")
	t.Setenv("CORS_ORIGINS", "https://paramount.example, https://www.paramount.example")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("LOG_REQUESTS", "true")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, []string{"https://paramount.example", "https://www.paramount.example"}, cfg.CORSOrigins)
	assert.Equal(t, "42", cfg.Notify.TelegramChatID)
	assert.True(t, cfg.LogRequests)
}

func TestParseRejectsUnknownDriver(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))
	t.Setenv("DB_DRIVER", "mongo")

	_, err := Parse()
	assert.Error(t, err)
}
