// Package config loads the sheet tool configuration from the environment
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/digimon-sheet/internal/errors"
)

// Store backends
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

var (
	storeKinds = []string{StoreFile, StoreRedis, StoreSQLite}
	logLevels  = []string{"debug", "info", "warn", "error"}
)

// Config is the tool configuration. Command-line flags override it.
type Config struct {
	// Store selects the sheet library backend used by the store commands
	Store      string `env:"DIGIMON_SHEET_STORE"       envDefault:"file"`
	Dir        string `env:"DIGIMON_SHEET_DIR"         envDefault:"."`
	RedisAddr  string `env:"DIGIMON_SHEET_REDIS_ADDR"  envDefault:"localhost:6379"`
	SQLitePath string `env:"DIGIMON_SHEET_SQLITE_PATH" envDefault:"sheets.db"`
	LogLevel   string `env:"DIGIMON_SHEET_LOG_LEVEL"   envDefault:"warn"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return nil
}

// Load reads the configuration from the environment, applies overrides in
// order and validates the result
func Load(overrides ...func(*Config)) (*Config, error) {
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	for _, override := range overrides {
		override(cfg)
	}
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Normalize lowercases the enumerated settings
func (c *Config) Normalize() {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

// Validate checks the configured values
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("Store", c.Store, storeKinds, vb)
	errors.ValidateEnum("LogLevel", c.LogLevel, logLevels, vb)

	switch c.Store {
	case StoreRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	case StoreSQLite:
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	}

	return vb.Build()
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
