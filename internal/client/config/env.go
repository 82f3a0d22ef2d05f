package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/postview/internal/flagx"
)

// parseEnv loads the dotenv file (if any) into the process environment
// without overriding variables that are already set, then overlays cfg with
// every POSTVIEW_* variable present.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(flagx.EnvFileFlags()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	setString(&cfg.StorageBackend, "POSTVIEW_STORAGE")
	setString(&cfg.StoragePath, "POSTVIEW_DB_PATH")
	setString(&cfg.RedisAddr, "POSTVIEW_REDIS_ADDR")
	setString(&cfg.RedisPassword, "POSTVIEW_REDIS_PASSWORD")
	setString(&cfg.APIBaseURL, "POSTVIEW_API_URL")
	setString(&cfg.LogLevel, "POSTVIEW_LOG_LEVEL")
	setString(&cfg.LogFormat, "POSTVIEW_LOG_FORMAT")

	if v, ok := os.LookupEnv("POSTVIEW_REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.RedisDB = n
	}
	if v, ok := os.LookupEnv("POSTVIEW_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}
