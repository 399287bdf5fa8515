// Package storage opens the key-value backend selected by configuration.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/getmockd/fakeapi/pkg/config"
	"github.com/getmockd/fakeapi/pkg/logging"
	"github.com/getmockd/fakeapi/pkg/store"
	"github.com/getmockd/fakeapi/pkg/store/file"
	"github.com/getmockd/fakeapi/pkg/store/memory"
	"github.com/getmockd/fakeapi/pkg/store/postgres"
	"github.com/getmockd/fakeapi/pkg/store/redis"
	"github.com/getmockd/fakeapi/pkg/store/sqlite"
)

// SQLiteFile is the database file name inside the data directory.
const SQLiteFile = "fakeapi.db"

// Open returns the backend described by cfg. The caller must Close it.
func Open(ctx context.Context, cfg config.StorageConfig, log *slog.Logger) (store.Store, error) {
	if log == nil {
		log = logging.Nop()
	}

	var (
		kv  store.Store
		err error
	)
	switch cfg.Backend {
	case store.BackendMemory:
		kv = memory.New()
	case store.BackendFile:
		kv, err = file.New(cfg.Dir, file.WithLogger(log))
	case store.BackendSQLite:
		kv, err = sqlite.New(filepath.Join(cfg.Dir, SQLiteFile))
	case store.BackendRedis:
		kv, err = redis.New(ctx, cfg.DSN, cfg.KeyPrefix)
	case store.BackendPostgres:
		kv, err = postgres.New(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Backend, err)
	}

	log.Debug("storage opened", "backend", cfg.Backend, "dir", cfg.Dir)
	return kv, nil
}
