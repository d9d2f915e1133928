// Package config handles configuration for the cityride CLI,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Storage backend selectors.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Config holds runtime settings for the cityride CLI.
//
// Fields:
//   - StorageBackend: which key-value backend to use (sqlite|postgres|redis|memory).
//   - DatabaseDSN: SQLite path or Postgres DSN, depending on the backend.
//   - RedisAddr: host:port of the Redis backend.
//   - GatewayLatency: simulated round trip of the mock auth backend.
//   - TokenSecret: HMAC secret for demo access tokens (HS256). Demo only.
//   - TokenValidity: access token lifetime.
//   - SystemScheme: host color-scheme signal ("light" or "dark") the theme
//     store resolves ModeSystem against; a terminal has no OS signal to read.
type Config struct {
	StorageBackend string
	DatabaseDSN    string
	RedisAddr      string
	GatewayLatency time.Duration
	TokenSecret    string
	TokenValidity  time.Duration
	SystemScheme   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = BackendSQLite
	c.DatabaseDSN = "cityride.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.GatewayLatency = 1 * time.Second
	c.TokenSecret = "demoSecret"
	c.TokenValidity = 24 * time.Hour
	c.SystemScheme = "light"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
