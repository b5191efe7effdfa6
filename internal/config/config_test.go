package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, ":5175", cfg.Addr())
	assert.Equal(t, "data/landmark.db", cfg.DBPath)
	assert.Equal(t, "America/New_York", cfg.TimeZone)
	assert.Equal(t, 14*24*time.Hour, cfg.TokenTTL())
	assert.False(t, cfg.Production)
	assert.False(t, cfg.InMemory())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_PATH", MemoryDB)
	t.Setenv("SHARE_URL", "https://example.com/landmark")
	t.Setenv("JWT_EXPIRES_DAYS", "1")
	t.Setenv("PRODUCTION", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.True(t, cfg.InMemory())
	assert.Equal(t, "https://example.com/landmark", cfg.ShareURL)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())
	assert.True(t, cfg.Production)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("JWT_EXPIRES_DAYS", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_EXPIRES_DAYS", "0")
	_, err = Load()
	assert.Error(t, err)
}
