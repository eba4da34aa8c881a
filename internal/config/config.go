// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers selectable with STORE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Config holds all configuration values for the API server and the CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// StoreDriver selects the blob store backend: sqlite (default),
	// postgres, redis or memory.
	StoreDriver string

	// SQLitePath is the database file for the sqlite driver.
	// Defaults to "data/adventures.db".
	SQLitePath string

	// DatabaseURL is the Postgres connection string. Required when
	// StoreDriver is postgres.
	DatabaseURL string

	// RedisAddr is host:port of the Redis server. Required when StoreDriver
	// is redis.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// RedisPrefix namespaces the two collection keys. Defaults to
	// "adventure-checklist:".
	RedisPrefix string

	// UnsplashAccessKey authenticates photo searches. Without it every
	// adventure shows the placeholder photo.
	UnsplashAccessKey string
	// UnsplashBaseURL defaults to the public API.
	UnsplashBaseURL string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set and any
// values that cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSOrigins:       splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StoreDriver:       strings.ToLower(getEnv("STORE_DRIVER", DriverSQLite)),
		SQLitePath:        getEnv("SQLITE_PATH", "data/adventures.db"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisPrefix:       getEnv("REDIS_PREFIX", "adventure-checklist:"),
		UnsplashAccessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
		UnsplashBaseURL:   getEnv("UNSPLASH_BASE_URL", "https://api.unsplash.com"),
	}

	var missing, invalid []string

	switch cfg.StoreDriver {
	case DriverSQLite, DriverMemory:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	case DriverRedis:
		if cfg.RedisAddr == "" {
			missing = append(missing, "REDIS_ADDR")
		}
	default:
		invalid = append(invalid, fmt.Sprintf("STORE_DRIVER=%q (want sqlite, postgres, redis or memory)", cfg.StoreDriver))
	}

	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil || db < 0 {
		invalid = append(invalid, "REDIS_DB must be a non-negative integer")
	}
	cfg.RedisDB = db

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil {
		invalid = append(invalid, "MAX_BODY_BYTES must be an integer")
	}
	cfg.MaxBodyBytes = maxBody

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", ")))
	}
	if len(invalid) > 0 {
		errs = append(errs, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, "; ")))
	}
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set.
// Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config.LoadDotEnv: %s: %w", p, err)
		}
	}
	return nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
