package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, BackendSQLite, c.StorageBackend)
	assert.Equal(t, "cityride.db", c.DatabaseDSN)
	assert.Equal(t, "127.0.0.1:6379", c.RedisAddr)
	assert.Equal(t, 1*time.Second, c.GatewayLatency)
	assert.Equal(t, 24*time.Hour, c.TokenValidity)
	assert.Equal(t, "light", c.SystemScheme)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, BackendSQLite, cfg.StorageBackend)
	assert.Equal(t, "cityride.db", cfg.DatabaseDSN)
}
