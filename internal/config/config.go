// Package config provides centralized configuration management for the
// pipeline. It loads configuration from environment variables with
// sensible defaults and validates the result on startup to fail fast on
// misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Database DatabaseConfig
	Ingest   IngestConfig
	Catalog  CatalogConfig
	Load     LoadConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds destination database connection settings.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string. Required unless
	// loading is disabled.
	// Supports both DATABASE_URL and DB_URL env vars for compatibility.
	URL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	// MaxConns is the maximum number of connections in the pool (default: 4)
	MaxConns int `env:"DB_MAX_CONNS" default:"4"`

	// MinConns is the minimum number of connections to keep open (default: 1)
	MinConns int `env:"DB_MIN_CONNS" default:"1"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime is the maximum idle time before a connection is closed (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

// IngestConfig holds input file settings.
type IngestConfig struct {
	// Path is the delimited input file. Usually supplied as a CLI
	// flag; the env var exists for scripted runs.
	Path string `env:"INPUT_PATH"`

	// Delimiter is the field delimiter of the input file (default: ",")
	Delimiter string `env:"INPUT_DELIMITER" default:","`

	// QuarantineDir is where reject partitions are written. Empty
	// means alongside the input file.
	QuarantineDir string `env:"QUARANTINE_DIR"`
}

// CatalogConfig holds reference catalog settings.
type CatalogConfig struct {
	// Path is an optional YAML catalog file merged over the builtin
	// country/subdivision lists.
	Path string `env:"CATALOG_PATH"`

	// MinScore is the fuzzy-search similarity floor (default: 0.55)
	MinScore float64 `env:"CATALOG_MIN_SCORE" default:"0.55"`
}

// LoadConfig holds destination load settings.
type LoadConfig struct {
	// Enabled controls whether accepted entities are upserted. When
	// false the run still writes quarantine files (default: true)
	Enabled bool `env:"LOAD_ENABLED" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
