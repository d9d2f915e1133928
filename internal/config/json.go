package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avoronin/cityride/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given in milliseconds so the file stays plain JSON. Pointer fields
// distinguish "absent" from zero, so the file only overrides what it names.
type JsonConfig struct {
	StorageBackend   *string `json:"storage_backend"`
	DatabaseDSN      *string `json:"database_dsn"`
	RedisAddr        *string `json:"redis_addr"`
	GatewayLatencyMs *int64  `json:"gateway_latency_ms"`
	TokenSecret      *string `json:"token_secret"`
	TokenValidityMin *int64  `json:"token_validity_min"`
	SystemScheme     *string `json:"system_scheme"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (via
// flagx.JsonConfigFlags); with neither present, nothing is loaded. Read or
// unmarshal errors panic (caller may recover). Intended usage is:
// defaults -> parseJson -> parseFlags, where later stages override earlier
// ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StorageBackend != nil {
		cfg.StorageBackend = *jc.StorageBackend
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.RedisAddr != nil {
		cfg.RedisAddr = *jc.RedisAddr
	}
	if jc.GatewayLatencyMs != nil {
		cfg.GatewayLatency = time.Duration(*jc.GatewayLatencyMs) * time.Millisecond
	}
	if jc.TokenSecret != nil {
		cfg.TokenSecret = *jc.TokenSecret
	}
	if jc.TokenValidityMin != nil {
		cfg.TokenValidity = time.Duration(*jc.TokenValidityMin) * time.Minute
	}
	if jc.SystemScheme != nil {
		cfg.SystemScheme = *jc.SystemScheme
	}
}
