// Package storage provides key-value persistence for shell state. The System
// interface abstracts the backing store; the filesystem implementation keeps
// one file per key under a base directory.
package storage

import (
	"context"
	"errors"

	"github.com/JaimeStill/admin-shell/pkg/lifecycle"
)

// Storage errors returned by System implementations.
var (
	// ErrNotFound indicates the requested key does not exist in storage.
	ErrNotFound = errors.New("storage: key not found")

	// ErrPermissionDenied indicates insufficient permissions to access the key.
	ErrPermissionDenied = errors.New("storage: permission denied")

	// ErrInvalidKey indicates the key is empty or attempts path traversal.
	ErrInvalidKey = errors.New("storage: invalid key")

	// ErrEntryTooLarge indicates the value exceeds max_entry_size.
	ErrEntryTooLarge = errors.New("storage: entry too large")
)

// System defines key-value storage operations.
type System interface {
	// Store saves data at key, overwriting any existing value.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns the data stored at key.
	// Returns ErrNotFound if the key does not exist.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Validate reports whether key exists and is readable.
	Validate(ctx context.Context, key string) (bool, error)

	// Start registers lifecycle hooks with the coordinator.
	Start(lc *lifecycle.Coordinator) error
}
