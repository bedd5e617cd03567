package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "CORS_ORIGINS", "SEED_PATH", "RATE_LIMIT_PER_MINUTE", "MAX_CHART_ENTRIES"} {
		t.Setenv(key, "")
	}

	require.NoError(t, Load())
	assert.Equal(t, "3000", AppConfig.Port)
	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, "info", AppConfig.LogLevel)
	assert.Equal(t, "*", AppConfig.CORSOrigins)
	assert.Empty(t, AppConfig.SeedPath)
	assert.Equal(t, 200, AppConfig.RateLimitPerMinute)
	assert.Equal(t, 10000, AppConfig.MaxChartEntries)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("SEED_PATH", "/etc/orgchart/seed.yml")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "50")
	t.Setenv("MAX_CHART_ENTRIES", "250")

	require.NoError(t, Load())
	assert.Equal(t, "8080", AppConfig.Port)
	assert.Equal(t, "production", AppConfig.Env)
	assert.Equal(t, "/etc/orgchart/seed.yml", AppConfig.SeedPath)
	assert.Equal(t, 50, AppConfig.RateLimitPerMinute)
	assert.Equal(t, 250, AppConfig.MaxChartEntries)
}

func TestLoad_InvalidRateLimit(t *testing.T) {
	for _, value := range []string{"zero", "0", "-5"} {
		t.Setenv("RATE_LIMIT_PER_MINUTE", value)
		assert.Error(t, Load(), value)
	}
}

func TestLoad_InvalidMaxChartEntries(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")
	for _, value := range []string{"lots", "0", "-1"} {
		t.Setenv("MAX_CHART_ENTRIES", value)
		assert.Error(t, Load(), value)
	}
}
