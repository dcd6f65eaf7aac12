package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/digimon-sheet/internal/config"
	"github.com/KirkDiggler/digimon-sheet/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, &config.Config{
		Store:      config.StoreFile,
		Dir:        ".",
		RedisAddr:  "localhost:6379",
		SQLitePath: "sheets.db",
		LogLevel:   "warn",
	}, cfg)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DIGIMON_SHEET_STORE", " SQLite ")
	t.Setenv("DIGIMON_SHEET_SQLITE_PATH", "/tmp/library.db")
	t.Setenv("DIGIMON_SHEET_LOG_LEVEL", "DEBUG")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreSQLite, cfg.Store)
	assert.Equal(t, "/tmp/library.db", cfg.SQLitePath)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("DIGIMON_SHEET_STORE", "postgres")

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Store")
}

func TestLoadOverridesEnv(t *testing.T) {
	t.Setenv("DIGIMON_SHEET_STORE", "postgres")
	t.Setenv("DIGIMON_SHEET_DIR", "/srv/sheets")

	cfg, err := config.Load(
		func(c *config.Config) { c.Store = "REDIS" },
		func(c *config.Config) { c.RedisAddr = "cache:6379" },
	)
	require.NoError(t, err)

	assert.Equal(t, config.StoreRedis, cfg.Store)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, "/srv/sheets", cfg.Dir)
}

func TestLoadValidatesOverrides(t *testing.T) {
	_, err := config.Load(func(c *config.Config) { c.LogLevel = "loud" })
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "LogLevel")
}

func TestValidateRequiresBackendSettings(t *testing.T) {
	cfg := &config.Config{Store: config.StoreRedis, LogLevel: "info"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RedisAddr")

	cfg = &config.Config{Store: config.StoreSQLite, LogLevel: "info"}
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SQLitePath")

	var nilCfg *config.Config
	assert.True(t, errors.IsInvalidArgument(nilCfg.Validate()))
}

func TestParseEnvError(t *testing.T) {
	type portConfig struct {
		Port int `env:"DIGIMON_SHEET_TEST_PORT" envDefault:"123"`
	}
	t.Setenv("DIGIMON_SHEET_TEST_PORT", "not-an-int")

	var cfg portConfig
	err := config.ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}
