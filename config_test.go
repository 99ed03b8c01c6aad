package portfolio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "DATABASE_URL", "SITE_URL", "SESSION_SECRET", "COOKIE_SECURE", "ADMIN_INITIAL_PASSWORD", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig()
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "portfolio.db", cfg.DatabasePath)
	assert.Equal(t, "http://localhost:8080", cfg.SiteURL)
	assert.Equal(t, DefaultAdminPassword, cfg.AdminPassword)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(maxUploadSize), cfg.MaxUploadSize)
	assert.False(t, cfg.CookieSecure)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "/var/lib/portfolio/site.db")
	t.Setenv("SITE_URL", "https://me.example.com")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("ADMIN_INITIAL_PASSWORD", "first-boot-secret")

	cfg := LoadConfig()
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
	assert.Equal(t, "/var/lib/portfolio/site.db", cfg.DatabasePath)
	assert.Equal(t, "https://me.example.com", cfg.SiteURL)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, "first-boot-secret", cfg.AdminPassword)
}

func TestNewLogger(t *testing.T) {
	_, err := NewLogger("loud", "")
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "portfolio.log")
	log, err := NewLogger("debug", file)
	require.NoError(t, err)
	log.Info("hello")
	_ = log.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
