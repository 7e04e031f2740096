package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPoolSettingsDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("DB_PASSWORD", "test-password")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Database.MaxConns)
	assert.Equal(t, 5, cfg.Database.MinConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnIdleTime)
}

func TestLoadPoolSettingsFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("DB_PASSWORD", "test-password")
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("DB_MIN_CONNS", "10")
	t.Setenv("DB_CONN_IDLE_TIME", "90s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Database.MaxConns)
	assert.Equal(t, 10, cfg.Database.MinConns)
	assert.Equal(t, 90*time.Second, cfg.Database.ConnIdleTime)
}

func TestLoadRejectsInvalidPoolSettings(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("DB_CONN_IDLE_TIME", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_CONN_IDLE_TIME")
}
