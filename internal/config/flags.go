package config

import (
	"flag"
	"os"
	"time"

	"github.com/avoronin/cityride/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   storage backend: sqlite|postgres|redis|memory
//	-d string   database DSN (sqlite path or postgres DSN)
//	-r string   redis address
//	-l int      simulated gateway latency in milliseconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend (sqlite|postgres|redis|memory)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	gatewayLatencyMs := fs.Int("l", int(cfg.GatewayLatency.Milliseconds()), "gateway latency (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.GatewayLatency = time.Duration(*gatewayLatencyMs) * time.Millisecond
}
