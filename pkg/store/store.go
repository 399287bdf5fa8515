// Package store defines the byte-oriented key-value capability the record
// store persists its collections into.
//
// Backends live in subpackages:
//   - memory:   process-local, nothing survives a restart
//   - file:     one JSON file per key under a data directory (default)
//   - sqlite:   a single-table embedded database
//   - redis:    a shared Redis instance, keys namespaced by a prefix
//   - postgres: a single table in PostgreSQL
//
// The default data directory follows the XDG Base Directory Specification:
// ~/.local/share/fakeapi on Linux.
package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// Common errors
var (
	ErrNotFound   = errors.New("key not found")
	ErrInvalidKey = errors.New("invalid key")
	ErrClosed     = errors.New("store is closed")
)

// Backend represents a storage backend type.
type Backend string

const (
	// BackendMemory keeps values in memory only
	BackendMemory Backend = "memory"
	// BackendFile stores each key as a JSON file
	BackendFile Backend = "file"
	// BackendSQLite uses an embedded SQLite database
	BackendSQLite Backend = "sqlite"
	// BackendRedis uses a Redis server
	BackendRedis Backend = "redis"
	// BackendPostgres uses a PostgreSQL database
	BackendPostgres Backend = "postgres"
)

// Backends lists every supported backend in display order.
var Backends = []Backend{BackendMemory, BackendFile, BackendSQLite, BackendRedis, BackendPostgres}

// Valid reports whether b names a supported backend.
func (b Backend) Valid() bool {
	for _, known := range Backends {
		if b == known {
			return true
		}
	}
	return false
}

// Store is a persistent key-value store holding opaque byte values.
//
// Get returns ErrNotFound when the key has never been written or has been
// deleted. Put replaces the whole value for a key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ValidKey reports whether key is safe to use with every backend.
// Keys are limited to ASCII letters, digits, '.', '_', '-' and ':'.
func ValidKey(key string) bool {
	if key == "" || len(key) > 200 {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == '-', r == ':':
		default:
			return false
		}
	}
	return true
}

// DefaultDataDir returns the default data directory following XDG spec.
func DefaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "fakeapi")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".fakeapi", "data")
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", "fakeapi")
	}
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			return filepath.Join(appData, "fakeapi")
		}
		return filepath.Join(home, "AppData", "Local", "fakeapi")
	}
	return filepath.Join(home, ".local", "share", "fakeapi")
}
