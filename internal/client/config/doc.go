// Package config loads runtime configuration for the postview client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a dotenv file
//     (default ".env", override with -e or -env).
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-s string   storage backend: sqlite, redis or memory
//	-d string   SQLite database path
//	-r string   Redis address (host:port)
//	-u string   posts API base URL
//	-t int      API request timeout (seconds)
//	-l string   log level: debug, info, warn, error
//
// Environment
//
//	POSTVIEW_STORAGE, POSTVIEW_DB_PATH, POSTVIEW_REDIS_ADDR,
//	POSTVIEW_REDIS_PASSWORD, POSTVIEW_REDIS_DB, POSTVIEW_API_URL,
//	POSTVIEW_TIMEOUT (Go duration), POSTVIEW_LOG_LEVEL, POSTVIEW_LOG_FORMAT
//
// # JSON schema
//
// Durations are strings like "10s" or integer nanoseconds:
//
//	{
//	  "storage_backend": "sqlite",
//	  "storage_path": "postview.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_password": "",
//	  "redis_db": 0,
//	  "api_base_url": "https://jsonplaceholder.typicode.com",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// Fields missing from the JSON keep their previous value. Malformed input in
// any source panics.
package config
