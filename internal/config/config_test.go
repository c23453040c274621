package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("SNAPCHAT_API_URL", "https://adsapi.example.com/v1/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://ops.example.com")
	t.Setenv("DATABASE_USER", "snap")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_URL", "db:5432/snap?sslmode=disable")
	t.Setenv("PROVISIONING_COUNTRY_CODE", "FR")
	t.Setenv("RUN_RETENTION_MAX_AGE", "6h")

	cfg, err := NewConfig()

	require.NoError(t, err)
	assert.Equal(t, "https://adsapi.example.com/v1", cfg.Snapchat.APIURL)
	assert.Equal(t, []string{"http://localhost:3000", "https://ops.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "postgres://snap:secret@db:5432/snap?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, "fr", cfg.Provisioning.CountryCode)
	assert.Equal(t, 6*time.Hour, cfg.RunRetention.MaxAge)
	assert.Equal(t, 30*time.Second, cfg.Snapchat.RequestTimeout)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "*/20 * * * *", cfg.TokenRefresh.CronSchedule)
}

func TestRedisEnabled(t *testing.T) {
	assert.False(t, Redis{}.Enabled())
	assert.True(t, Redis{URL: "redis://localhost:6379/0"}.Enabled())
}
