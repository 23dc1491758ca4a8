package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	slotFileMode = 0644
	slotDirMode  = 0755
)

// File stores each slot as <dir>/<key>.json.
type File struct {
	dir string
	mu  sync.Mutex
}

// NewFile creates a file-backed storage rooted at dir.
func NewFile(dir string) *File {
	return &File{dir: dir}
}

// Path returns the file that holds key.
func (f *File) Path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Get(key string) (string, bool, error) {
	if err := validKey(key); err != nil {
		return "", false, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read slot %s: %w", key, err)
	}
	if len(data) == 0 {
		return "", false, nil
	}
	return string(data), true, nil
}

// Set replaces the slot atomically through a temp file and rename.
func (f *File) Set(key, value string) error {
	if err := validKey(key); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.Path(key)
	if err := os.MkdirAll(f.dir, slotDirMode); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(f.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp slot: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(value); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write temp slot: %w", err)
	}
	if err := tmpFile.Chmod(slotFileMode); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("chmod temp slot: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp slot: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		if removeErr := os.Remove(path); removeErr != nil && !os.IsNotExist(removeErr) {
			return fmt.Errorf("replace slot: rename failed (%v), remove failed (%v)", err, removeErr)
		}
		if retryErr := os.Rename(tmpPath, path); retryErr != nil {
			return fmt.Errorf("replace slot after remove: %w", retryErr)
		}
	}
	return nil
}
