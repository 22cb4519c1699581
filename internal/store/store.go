// Package store provides key-value persistence backends for theme settings.
//
// The host picks a backend at startup: MemoryStore for server contexts and
// tests, FileStore for a JSON file under the user's config directory, or
// SQLiteStore for an embedded database.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const appDir = "hemam-theme"

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// Kind names a backend.
type Kind string

// Available backends.
const (
	KindMemory Kind = "memory"
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
)

// KV is a minimal key-value store holding opaque blobs.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Close releases backend resources.
	Close() error
}

// ParseKind validates a backend name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindMemory, KindFile, KindSQLite:
		return k, nil
	default:
		return "", fmt.Errorf("store: unknown backend %q (expected memory, file or sqlite)", s)
	}
}

// DefaultPath returns the default location for a file-backed kind.
func DefaultPath(kind Kind) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("store: unable to determine config directory: %w", err)
	}
	name := "settings.json"
	if kind == KindSQLite {
		name = "settings.db"
	}
	return filepath.Join(base, appDir, name), nil
}

// Open creates the backend of the given kind. An empty path selects
// DefaultPath; it is ignored for the memory backend.
func Open(kind Kind, path string) (KV, error) {
	if kind == KindMemory {
		return NewMemoryStore(), nil
	}

	if path == "" {
		var err error
		path, err = DefaultPath(kind)
		if err != nil {
			return nil, err
		}
	}

	switch kind {
	case KindFile:
		return OpenFile(path)
	case KindSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", kind)
	}
}
