package config

import "time"

// Config holds runtime settings for the postview client.
type Config struct {
	StorageBackend string
	StoragePath    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	APIBaseURL     string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = "sqlite"
	c.StoragePath = "postview.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPassword = ""
	c.RedisDB = 0
	c.APIBaseURL = "https://jsonplaceholder.typicode.com"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig applies defaults, then environment, JSON and flags in turn.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
