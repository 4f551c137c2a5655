package storage

import (
	"encoding/json"
	"fmt"
	"log"
)

// Adapter wraps a Backend with verified writes and never-failing reads.
// Components must go through it; nothing else touches the backend.
type Adapter struct {
	b     Backend
	debug bool
}

func New(b Backend, debug bool) *Adapter { return &Adapter{b: b, debug: debug} }

func (a *Adapter) Debug() bool { return a.debug }

// Write serializes v, stores it, then reads the key back and byte-compares.
// A mismatch surfaces as ErrWriteVerification; platform failures come back
// from the backend as ErrStorageUnavailable / ErrQuotaExceeded. No retry.
func (a *Adapter) Write(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	str := string(b)
	if err := a.b.Set(key, str); err != nil {
		return err
	}
	back, ok, err := a.b.Get(key)
	if err != nil || !ok || back != str {
		return fmt.Errorf("%w: %s", ErrWriteVerification, key)
	}
	if a.debug {
		log.Printf("[store] verified write %s (%d bytes)", key, len(str))
	}
	return nil
}

// Read never fails: any access or parse problem is logged and the fallback
// is returned, so a list view can always render.
func (a *Adapter) Read(key string, fallback []json.RawMessage) []json.RawMessage {
	raw, ok, err := a.b.Get(key)
	if err != nil {
		log.Printf("[store] read failed for %s: %v", key, err)
		return fallback
	}
	if !ok || raw == "" {
		if a.debug {
			log.Printf("[store] %s empty, using fallback", key)
		}
		return fallback
	}
	var arr []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &arr); err != nil {
		log.Printf("[store] parse failed for %s: %v", key, err)
		return fallback
	}
	return arr
}

// MigrateIfNeeded copies a pre-versioning key into the current one, verbatim,
// the first time the current key turns out empty. Best-effort: failures are
// logged and swallowed, absence of legacy data is not an error.
func (a *Adapter) MigrateIfNeeded(key, legacyKey string) {
	if _, ok, err := a.b.Get(key); err != nil || ok {
		return
	}
	legacy, ok, err := a.b.Get(legacyKey)
	if err != nil || !ok {
		return
	}
	if err := a.b.Set(key, legacy); err != nil {
		log.Printf("[store] migration %s -> %s failed: %v", legacyKey, key, err)
		return
	}
	log.Printf("[store] migrated %s -> %s", legacyKey, key)
}

func (a *Adapter) Probe() error { return a.b.Probe() }
