package sheet

import (
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	// Registers the "sqlite" database/sql driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/digimon-sheet/internal/errors"
	"github.com/KirkDiggler/digimon-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/digimon-sheet/internal/sheetdoc"
)

const createSheetsTable = `
CREATE TABLE IF NOT EXISTS sheets (
	location   TEXT PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	document   BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

// OpenSQLite opens the sheet library database at path and creates its
// schema. The caller owns the returned handle.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite db")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to ping sqlite db %s", path)
	}
	if _, err := db.ExecContext(ctx, createSheetsTable); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to create sheets table")
	}

	return db, nil
}

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite sheet repository
type SQLiteConfig struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewSQLite creates a sheet library on a database opened with OpenSQLite
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqliteRepository{
		db:    cfg.DB,
		clock: c,
	}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	location := strings.TrimSpace(input.Location)
	if location == "" {
		return nil, errors.InvalidArgument(errLocationEmpty)
	}

	var data []byte
	err := r.db.QueryRowContext(ctx, `SELECT document FROM sheets WHERE location = ?`, location).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("sheet %s not found", location)
		}
		return nil, errors.Wrapf(err, "failed to get sheet")
	}

	record, err := sheetdoc.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode sheet %s", location).WithMeta("location", location)
	}

	return &GetOutput{Location: location, Record: record}, nil
}

func (r *sqliteRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	location := strings.TrimSpace(input.Location)
	if location == "" {
		return nil, errors.InvalidArgument(errLocationEmpty)
	}
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}

	data, err := sheetdoc.Encode(input.Record)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO sheets (location, name, document, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(location) DO UPDATE SET
	name = excluded.name,
	document = excluded.document,
	updated_at = excluded.updated_at`,
		location, input.Record.Name, data, r.clock.Now().UTC().UnixMilli(),
	)
	if err != nil {
		slog.ErrorContext(ctx, "failed to store sheet", "location", location, "error", err)
		return nil, errors.Wrapf(err, "failed to store sheet")
	}

	slog.DebugContext(ctx, "stored sheet", "location", location, "bytes", len(data))
	return &PutOutput{Location: location}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	location := strings.TrimSpace(input.Location)
	if location == "" {
		return nil, errors.InvalidArgument(errLocationEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM sheets WHERE location = ?`, location)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete sheet")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete sheet")
	}
	if n == 0 {
		return nil, errors.NotFoundf("sheet %s not found", location)
	}

	return &DeleteOutput{}, nil
}

func (r *sqliteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT location, name, updated_at FROM sheets ORDER BY location`)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list sheets")
	}
	defer func() { _ = rows.Close() }()

	entries := []Entry{}
	for rows.Next() {
		var (
			entry     Entry
			updatedAt int64
		)
		if err := rows.Scan(&entry.Location, &entry.Name, &updatedAt); err != nil {
			return nil, errors.Wrapf(err, "failed to scan sheet row")
		}
		entry.UpdatedAt = time.UnixMilli(updatedAt).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list sheets")
	}

	return &ListOutput{Entries: entries}, nil
}
