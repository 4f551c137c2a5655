package storage

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// flakyBackend stores writes but always returns something else on read-back.
type flakyBackend struct{ m map[string]string }

func (f *flakyBackend) Get(key string) (string, bool, error) {
	v, ok := f.m[key]
	return v + "x", ok, nil
}
func (f *flakyBackend) Set(key, val string) error {
	if f.m == nil { f.m = map[string]string{} }
	f.m[key] = val
	return nil
}
func (f *flakyBackend) Probe() error { return nil }

// fullBackend simulates an exhausted device.
type fullBackend struct{}

func (fullBackend) Get(string) (string, bool, error) { return "", false, nil }
func (fullBackend) Set(string, string) error         { return ErrQuotaExceeded }
func (fullBackend) Probe() error                     { return nil }

func TestWriteThenReadRoundTrip(t *testing.T) {
	a := New(NewMemory(), false)

	err := a.Write(PlotsKey, []map[string]any{{"id": "p1"}, {"id": "p2"}})
	assert.NoError(t, err)

	raws := a.Read(PlotsKey, nil)
	assert.Len(t, raws, 2)

	// idempotent without intervening writes
	again := a.Read(PlotsKey, nil)
	assert.Equal(t, raws, again)
}

func TestReadFallsBackOnGarbage(t *testing.T) {
	b := NewMemory()
	a := New(b, false)

	assert.NoError(t, b.Set(ExpensesKey, "{not json"))
	fallback := []json.RawMessage{json.RawMessage(`{"id":"x"}`)}
	assert.Equal(t, fallback, a.Read(ExpensesKey, fallback))

	// an object instead of an array also falls back
	assert.NoError(t, b.Set(ExpensesKey, `{"id":"x"}`))
	assert.Equal(t, fallback, a.Read(ExpensesKey, fallback))

	// missing key
	assert.Nil(t, a.Read(RemindersKey, nil))
}

func TestWriteVerificationFailureSurfacesEveryTime(t *testing.T) {
	a := New(&flakyBackend{}, false)
	for i := 0; i < 3; i++ {
		err := a.Write(PlotsKey, []string{"v"})
		assert.True(t, errors.Is(err, ErrWriteVerification), "attempt %d: %v", i, err)
	}
}

func TestWriteQuotaExceeded(t *testing.T) {
	a := New(fullBackend{}, false)
	err := a.Write(PlotsKey, []string{"v"})
	assert.True(t, errors.Is(err, ErrQuotaExceeded))
}

func TestMigrateIfNeeded(t *testing.T) {
	b := NewMemory()
	a := New(b, false)

	legacy := `[{"id":"old"}]`
	assert.NoError(t, b.Set(LegacyPlotsKey, legacy))

	a.MigrateIfNeeded(PlotsKey, LegacyPlotsKey)
	cur, ok, err := b.Get(PlotsKey)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, legacy, cur, "legacy data copied verbatim")

	// a second migration never overwrites the versioned key
	assert.NoError(t, b.Set(LegacyPlotsKey, `[{"id":"newer"}]`))
	a.MigrateIfNeeded(PlotsKey, LegacyPlotsKey)
	cur, _, _ = b.Get(PlotsKey)
	assert.Equal(t, legacy, cur)
}

func TestMigrateWithoutLegacyIsNoop(t *testing.T) {
	b := NewMemory()
	New(b, false).MigrateIfNeeded(PlotsKey, LegacyPlotsKey)
	_, ok, _ := b.Get(PlotsKey)
	assert.False(t, ok)
}
