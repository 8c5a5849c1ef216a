package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "portfolio")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PROFILE_PATH", "")
	t.Setenv("STATIC_DIR", "")
	t.Setenv("REDIS_ENABLED", "")
	t.Setenv("REDIS_TTL", "")
	t.Setenv("QR_WIDTH", "")
	t.Setenv("QR_MARGIN", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, "", cfg.Profile.Path)
	assert.Equal(t, "./static", cfg.Profile.StaticDir)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 200, cfg.QR.Width)
	assert.Equal(t, 2, cfg.QR.Margin)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingRequiredEnv))
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "HTTP_PORT")
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PROFILE_PATH", "/etc/portfolio/profile.yaml")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_TTL", "30")
	t.Setenv("QR_WIDTH", "320")
	t.Setenv("QR_MARGIN", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/etc/portfolio/profile.yaml", cfg.Profile.Path)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 320, cfg.QR.Width)
	assert.Equal(t, 0, cfg.QR.Margin)
}

func TestLoad_InvalidNumbers(t *testing.T) {
	setRequired(t)
	t.Setenv("QR_WIDTH", "wide")
	t.Setenv("REDIS_ENABLED", "maybe")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QR_WIDTH")
	assert.Contains(t, err.Error(), "REDIS_ENABLED")
}
