package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileBackendGetSet(t *testing.T) {
	f, err := NewFile(t.TempDir())
	assert.NoError(t, err)

	_, ok, err := f.Get(PlotsKey)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, f.Set(PlotsKey, `[{"id":"a"}]`))
	v, ok, err := f.Get(PlotsKey)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v)

	assert.NoError(t, f.Probe())
}

func TestFileBackendUnavailableDir(t *testing.T) {
	// a plain file where the data dir should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	assert.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := NewFile(filepath.Join(blocker, "data"))
	assert.True(t, errors.Is(err, ErrStorageUnavailable), "got %v", err)
}
