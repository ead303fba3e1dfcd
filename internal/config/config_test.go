package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DASHBOARD_SOURCE", "")
	t.Setenv("UPSTREAM_TIMEOUT", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, SourceHTTP, cfg.Source)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.Timezone)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("UPSTREAM_RPS", "2.5")
	t.Setenv("UPSTREAM_RETRIES", "notanumber")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 2.5, cfg.UpstreamRPS)
	assert.Equal(t, 2, cfg.UpstreamRetries)
}

func TestValidate(t *testing.T) {
	assert.Error(t, (&Config{Source: SourceDB}).Validate())
	assert.NoError(t, (&Config{Source: SourceDB, DBUrl: "postgres://x"}).Validate())
	assert.Error(t, (&Config{Source: "ftp"}).Validate())
	assert.Error(t, (&Config{Source: SourceDB, DBUrl: "postgres://x", Timezone: "Mars/Olympus"}).Validate())
	assert.NoError(t, (&Config{Source: SourceDB, DBUrl: "postgres://x", Timezone: "UTC"}).Validate())
}
