package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/postview/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. Only the flags listed
// here are parsed, so flags owned by other loaders are not errors.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-r", "-u", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend (sqlite|redis|memory)")
	fs.StringVar(&cfg.StoragePath, "d", cfg.StoragePath, "SQLite database path")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "posts API base URL")
	timeout := fs.Int("t", -1, "API request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t overrides only when given.
	if *timeout >= 0 {
		cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	}
}
