package storage

import "errors"

// Common storage errors
var (
	// ErrCorruptDocument indicates that the persisted document exists but cannot be decoded
	ErrCorruptDocument = errors.New("credential document is corrupt")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
