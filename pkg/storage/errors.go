package storage

import "errors"

var (
	// ErrStorageUnavailable means the backing store cannot be opened or
	// written at all (bad data dir, permissions, ...).
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrQuotaExceeded means the device ran out of space mid-write.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrWriteVerification means the read-back after a write did not match
	// what was written; the record may not have been saved.
	ErrWriteVerification = errors.New("write verification failed")
)
