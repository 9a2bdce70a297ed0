package store

import "errors"

// Store errors.
var (
	ErrInvalidLayout    = errors.New("store: invalid layout")
	ErrInvalidDevice    = errors.New("store: invalid device")
	ErrInvalidCacheMode = errors.New("store: invalid cache mode")
	ErrInvalidUser      = errors.New("store: username required")
)
