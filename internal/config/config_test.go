package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/bolao/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ADMIN_EMAILS", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
	assert.False(t, cfg.AIEnabled())
	assert.Equal(t, "postgres://postgres:@localhost:5432/bolao?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_AdminEmails(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "admin@gft.com,ops@gft.com")
	t.Setenv("GEMINI_API_KEY", "key")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"admin@gft.com", "ops@gft.com"}, cfg.Auth.AdminEmails)
	assert.True(t, cfg.AIEnabled())
}
