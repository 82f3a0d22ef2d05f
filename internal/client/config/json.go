package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/postview/internal/flagx"
	"github.com/dmitrijs2005/postview/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration. Pointer fields tell
// an absent key apart from a zero value.
type JsonConfig struct {
	StorageBackend *string         `json:"storage_backend"`
	StoragePath    *string         `json:"storage_path"`
	RedisAddr      *string         `json:"redis_addr"`
	RedisPassword  *string         `json:"redis_password"`
	RedisDB        *int            `json:"redis_db"`
	APIBaseURL     *string         `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       *string         `json:"log_level"`
	LogFormat      *string         `json:"log_format"`
}

// parseJson overlays cfg with the JSON file named by -c/-config. Without the
// flag nothing happens. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.StorageBackend, jc.StorageBackend)
	overlay(&cfg.StoragePath, jc.StoragePath)
	overlay(&cfg.RedisAddr, jc.RedisAddr)
	overlay(&cfg.RedisPassword, jc.RedisPassword)
	overlay(&cfg.RedisDB, jc.RedisDB)
	overlay(&cfg.APIBaseURL, jc.APIBaseURL)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func overlay[T any](dst, src *T) {
	if src != nil {
		*dst = *src
	}
}
