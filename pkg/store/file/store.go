// Package file provides a file-based implementation of store.Store.
// Each key is stored as its own JSON file in the data directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/getmockd/fakeapi/pkg/logging"
	"github.com/getmockd/fakeapi/pkg/store"
)

var _ store.Store = (*FileStore)(nil)

// FileStore implements store.Store using one file per key.
type FileStore struct {
	dir    string
	mu     sync.RWMutex
	closed bool
	log    *slog.Logger
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithLogger sets the logger used for write diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(s *FileStore) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a FileStore rooted at dir, creating the directory with
// secure permissions (0700) if needed. An empty dir uses store.DefaultDataDir.
func New(dir string, opts ...Option) (*FileStore, error) {
	if dir == "" {
		dir = store.DefaultDataDir()
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	s := &FileStore{dir: dir, log: logging.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the data directory path.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads the file for key.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	if !store.ValidKey(key) {
		return nil, store.ErrInvalidKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, store.ErrClosed
	}
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Put writes value for key with an atomic temp-file-then-rename.
func (s *FileStore) Put(_ context.Context, key string, value []byte) error {
	if !store.ValidKey(key) {
		return store.ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.ErrClosed
	}

	dataFile := s.path(key)
	tmpFile := dataFile + ".tmp"

	if err := os.WriteFile(tmpFile, value, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if err := os.Rename(tmpFile, dataFile); err != nil {
		_ = os.Remove(tmpFile) // Clean up temp file on failure
		return fmt.Errorf("failed to rename %s: %w", key, err)
	}

	s.log.Debug("wrote key", "key", key, "bytes", len(value))
	return nil
}

// Delete removes the file for key. Deleting a missing key is not an error.
func (s *FileStore) Delete(_ context.Context, key string) error {
	if !store.ValidKey(key) {
		return store.ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.ErrClosed
	}
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Close marks the store closed. Safe to call multiple times.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
