// Package storage provides durable key-value slots for persisted state.
package storage

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// ErrClosed is returned by backends used after Close.
var ErrClosed = errors.New("storage closed")

// Storage is a durable key-value capability. Get reports ok=false for a
// missing or empty slot.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Open builds the backend named by backend, rooted at dataDir.
// The returned io.Closer releases backend resources and is never nil.
func Open(backend, dataDir string) (Storage, io.Closer, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return NewFile(dataDir), nopCloser{}, nil
	case BackendSQLite:
		db, err := OpenSQLite(filepath.Join(dataDir, "approvals.db"))
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	case BackendMemory:
		return NewMemory(), nopCloser{}, nil
	case BackendNone:
		return Nop{}, nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func validKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("storage key is required")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid storage key: %q", key)
	}
	return nil
}
