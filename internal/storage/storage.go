// Package storage provides the key-value persistence used for the collected
// history. Backends: sqlite (default), one JSON file per key, and memory.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

var ErrNotFound = errors.New("storage: key not found")

type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Open picks a backend by name. path is the database file for sqlite and the
// directory for file.
func Open(backend, path string) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendSQLite:
		return OpenSQLite(path, Options{BusyTimeout: 5 * time.Second})
	case BackendFile:
		return OpenDir(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}

// DefaultPath is where a backend keeps its data below dataDir.
func DefaultPath(backend, dataDir string) string {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendFile:
		return filepath.Join(dataDir, "history")
	case BackendMemory:
		return ""
	default:
		return filepath.Join(dataDir, "history.db")
	}
}
