package storage

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nikbrunner/olm/internal/model"
)

// AppName is the directory name used below the XDG base directories.
const AppName = "olm"

// ErrUnknownFormat is returned for a store format that has no backend.
var ErrUnknownFormat = errors.New("unknown store format")

// Format selects the on-disk representation of the link collection.
type Format string

const (
	// FormatTitleMap is a JSON object keyed by title: {"T": {"title": "T", "url": "U"}}.
	FormatTitleMap Format = "titlemap"
	// FormatList is a JSON array: [{"name": "T", "url": "U"}].
	FormatList Format = "list"
	// FormatSQLite is a SQLite database with one links table.
	FormatSQLite Format = "sqlite"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTitleMap, FormatList, FormatSQLite:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Storage defines the interface for persisting links.
type Storage interface {
	Load() (*model.Store, error)
	Save(store *model.Store) error
	Path() string
	Close() error
}

// Options configures Open.
type Options struct {
	Format Format
	Path   string // empty = DefaultPath(Format)

	// UniqueTitles only applies to SQLite; the JSON shapes fix it.
	UniqueTitles bool
}

// Open opens the backend for the given format.
func Open(opts Options) (Storage, error) {
	path := opts.Path
	if path == "" {
		path = DefaultPath(opts.Format)
	}

	switch opts.Format {
	case FormatTitleMap:
		return NewTitleMapStorage(path), nil
	case FormatList:
		return NewListStorage(path), nil
	case FormatSQLite:
		return NewSQLiteStorage(path, opts.UniqueTitles)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
}

// DefaultPath returns the default location for a format:
// titlemap -> ./onion_links.json, list -> $XDG_CONFIG_HOME/olm/bookmarks.json,
// sqlite -> $XDG_DATA_HOME/olm/links.db.
func DefaultPath(format Format) string {
	switch format {
	case FormatList:
		return filepath.Join(xdg.ConfigHome, AppName, "bookmarks.json")
	case FormatSQLite:
		return filepath.Join(xdg.DataHome, AppName, "links.db")
	default:
		return "onion_links.json"
	}
}
