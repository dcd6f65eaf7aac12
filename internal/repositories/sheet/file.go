package sheet

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KirkDiggler/digimon-sheet/internal/errors"
	"github.com/KirkDiggler/digimon-sheet/internal/sheetdoc"
)

const (
	errLocationEmpty = "location cannot be empty"
	errRecordNil     = "record cannot be nil"
)

type fileRepository struct {
	dir string
	// sync flushes a written temp file before it replaces the target
	sync func(*os.File) error
}

// FileConfig contains configuration for the file sheet repository
type FileConfig struct {
	// Dir is the directory List enumerates and relative locations resolve
	// against. Empty means the working directory.
	Dir string
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	return nil
}

// NewFile creates a repository that stores each sheet as a document file
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileRepository{
		dir:  cfg.Dir,
		sync: (*os.File).Sync,
	}, nil
}

// FileLocation returns the path a location is stored at: the location with
// the document extension added when it has none.
func FileLocation(location string) string {
	location = strings.TrimSpace(location)
	if location == "" {
		return ""
	}
	if filepath.Ext(location) == "" {
		location += sheetdoc.Extension
	}
	return location
}

func (r *fileRepository) path(location string) string {
	location = FileLocation(location)
	if r.dir == "" || filepath.IsAbs(location) {
		return location
	}
	return filepath.Join(r.dir, location)
}

func (r *fileRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if strings.TrimSpace(input.Location) == "" {
		return nil, errors.InvalidArgument(errLocationEmpty)
	}

	path := r.path(input.Location)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("sheet %s not found", path)
		}
		slog.ErrorContext(ctx, "failed to read sheet file", "path", path, "error", err)
		return nil, errors.Wrapf(err, "failed to read sheet %s", path)
	}

	record, err := sheetdoc.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode sheet %s", path).WithMeta("location", path)
	}

	return &GetOutput{Location: path, Record: record}, nil
}

// Put writes to a temp file in the target directory and renames it over
// the target, so readers never observe a partial document.
func (r *fileRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if strings.TrimSpace(input.Location) == "" {
		return nil, errors.InvalidArgument(errLocationEmpty)
	}
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}

	data, err := sheetdoc.Encode(input.Record)
	if err != nil {
		return nil, err
	}

	path := r.path(input.Location)
	if err := r.writeAtomic(path, data); err != nil {
		slog.ErrorContext(ctx, "failed to write sheet file", "path", path, "error", err)
		return nil, errors.Wrapf(err, "failed to save sheet %s", path).WithMeta("location", path)
	}

	slog.DebugContext(ctx, "saved sheet file", "path", path, "bytes", len(data))
	return &PutOutput{Location: path}, nil
}

func (r *fileRepository) writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = r.sync(tmp); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	// Keep the permissions of a file being replaced
	if info, statErr := os.Stat(path); statErr == nil {
		if err = os.Chmod(tmpName, info.Mode().Perm()); err != nil {
			return err
		}
	} else if err = os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

func (r *fileRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if strings.TrimSpace(input.Location) == "" {
		return nil, errors.InvalidArgument(errLocationEmpty)
	}

	path := r.path(input.Location)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("sheet %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to delete sheet %s", path)
	}

	slog.DebugContext(ctx, "deleted sheet file", "path", path)
	return &DeleteOutput{}, nil
}

// List skips files that are not sheet documents
func (r *fileRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	dir := r.dir
	if dir == "" {
		dir = "."
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &ListOutput{Entries: []Entry{}}, nil
		}
		return nil, errors.Wrapf(err, "failed to list sheets in %s", dir)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() || filepath.Ext(de.Name()) != sheetdoc.Extension || strings.HasPrefix(de.Name(), ".") {
			continue
		}

		path := filepath.Join(dir, de.Name())
		info, err := de.Info()
		if err != nil {
			slog.DebugContext(ctx, "skipping unreadable sheet file", "path", path, "error", err)
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			slog.DebugContext(ctx, "skipping unreadable sheet file", "path", path, "error", err)
			continue
		}
		record, err := sheetdoc.Decode(data)
		if err != nil {
			slog.DebugContext(ctx, "skipping non-sheet file", "path", path, "error", err)
			continue
		}

		entries = append(entries, Entry{
			Location:  path,
			Name:      record.Name,
			UpdatedAt: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Location < entries[j].Location })
	return &ListOutput{Entries: entries}, nil
}
