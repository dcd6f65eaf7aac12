package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/digimon-sheet/internal/config"
	"github.com/KirkDiggler/digimon-sheet/internal/engine"
	"github.com/KirkDiggler/digimon-sheet/internal/errors"
	sheetorch "github.com/KirkDiggler/digimon-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/digimon-sheet/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/digimon-sheet/internal/redis"
	sheetrepo "github.com/KirkDiggler/digimon-sheet/internal/repositories/sheet"
)

// rootOptions holds the global flags. Flags that are set override the
// environment configuration.
type rootOptions struct {
	store      string
	dir        string
	redisAddr  string
	sqlitePath string
	logLevel   string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "digimon-sheet",
		Short: "Digimon 2e character sheet editor",
		Long: `digimon-sheet creates, edits and checks Digimon 2e character sheets.

Sheets are JSON documents. Derived values (stat totals, resources, movement,
max health and the DP budget) are recomputed on every load and edit and are
never read from the file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.load,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.store, "store", "", "sheet library backend: file, redis or sqlite (env DIGIMON_SHEET_STORE)")
	flags.StringVar(&opts.dir, "dir", "", "sheet library directory for the file backend (env DIGIMON_SHEET_DIR)")
	flags.StringVar(&opts.redisAddr, "redis-addr", "", "redis address for the redis backend (env DIGIMON_SHEET_REDIS_ADDR)")
	flags.StringVar(&opts.sqlitePath, "sqlite-path", "", "database path for the sqlite backend (env DIGIMON_SHEET_SQLITE_PATH)")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (env DIGIMON_SHEET_LOG_LEVEL)")

	cmd.AddCommand(newNewCmd(opts))
	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newSetCmd(opts))
	cmd.AddCommand(newRollCmd(opts))
	cmd.AddCommand(newConvertCmd(opts))
	cmd.AddCommand(newStoreCmd(opts))

	return cmd
}

func (o *rootOptions) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.flagOverrides(cmd))
	if err != nil {
		return err
	}
	o.cfg = cfg

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
	return nil
}

// flagOverrides copies the flags that were set over the environment values
func (o *rootOptions) flagOverrides(cmd *cobra.Command) func(*config.Config) {
	flags := cmd.Flags()
	return func(cfg *config.Config) {
		set := func(name string, target *string, value string) {
			if flags.Changed(name) {
				*target = value
			}
		}
		set("store", &cfg.Store, o.store)
		set("dir", &cfg.Dir, o.dir)
		set("redis-addr", &cfg.RedisAddr, o.redisAddr)
		set("sqlite-path", &cfg.SQLitePath, o.sqlitePath)
		set("log-level", &cfg.LogLevel, o.logLevel)
	}
}

// newEditor returns an orchestrator over sheet files. Locations are paths
// relative to the working directory.
func newEditor() (*sheetorch.Orchestrator, error) {
	repo, err := sheetrepo.NewFile(&sheetrepo.FileConfig{})
	if err != nil {
		return nil, err
	}
	return newEditorWithRepo(repo)
}

func newEditorWithRepo(repo sheetrepo.Repository) (*sheetorch.Orchestrator, error) {
	eng, err := engine.New(&engine.Config{})
	if err != nil {
		return nil, err
	}

	return sheetorch.NewOrchestrator(&sheetorch.Config{
		SheetRepo:   repo,
		Engine:      eng,
		IDGenerator: idgen.NewUUID("sheet"),
	})
}

// openLibrary opens the configured sheet library
func (o *rootOptions) openLibrary(ctx context.Context) (sheetrepo.Repository, func(), error) {
	switch o.cfg.Store {
	case config.StoreRedis:
		client, err := redisclient.NewClient(o.cfg.RedisAddr, nil)
		if err != nil {
			return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis config")
		}
		cleanup := func() {
			_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
		}
		if err := client.Ping(ctx).Err(); err != nil {
			cleanup()
			return nil, nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "redis at %s is unreachable", o.cfg.RedisAddr)
		}
		repo, err := sheetrepo.NewRedis(&sheetrepo.RedisConfig{Client: client})
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		return repo, cleanup, nil

	case config.StoreSQLite:
		db, err := sheetrepo.OpenSQLite(ctx, o.cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			_ = db.Close() // nolint:errcheck // safe to ignore in cleanup
		}
		repo, err := sheetrepo.NewSQLite(&sheetrepo.SQLiteConfig{DB: db})
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		return repo, cleanup, nil

	default:
		repo, err := sheetrepo.NewFile(&sheetrepo.FileConfig{Dir: o.cfg.Dir})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}
