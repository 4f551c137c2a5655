package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"
)

// File keeps one file per key under a data directory.
type File struct {
	dir string
	mu  sync.Mutex
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: mkdir %s: %v", ErrStorageUnavailable, dir, err)
	}
	f := &File{dir: dir}
	if err := f.Probe(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) path(key string) string { return filepath.Join(f.dir, key+".json") }

func (f *File) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(b), true, nil
}

func (f *File) Set(key, val string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.WriteFile(f.path(key), []byte(val), 0o644); err != nil {
		if errors.Is(err, syscall.ENOSPC) {
			return fmt.Errorf("%w: %s", ErrQuotaExceeded, key)
		}
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, key, err)
	}
	return nil
}

// Probe write-deletes a sentinel file, same trick the browser build uses to
// detect storage blocked by private mode.
func (f *File) Probe() error {
	p := filepath.Join(f.dir, "_probe")
	if err := os.WriteFile(p, []byte("1"), 0o644); err != nil {
		return fmt.Errorf("%w: %s not writable: %v", ErrStorageUnavailable, f.dir, err)
	}
	_ = os.Remove(p)
	return nil
}
