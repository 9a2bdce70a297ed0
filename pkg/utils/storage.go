package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/JaimeStill/admin-shell/pkg/storage"
)

// Storage stores JSON values in a storage.System under a key namespace.
type Storage struct {
	sys       storage.System
	namespace string
}

// StorageLocal creates namespaced JSON storage over sys.
func StorageLocal(sys storage.System, namespace string) *Storage {
	return &Storage{sys: sys, namespace: namespace}
}

// Namespace returns the key prefix.
func (s *Storage) Namespace() string {
	return s.namespace
}

// GetItem decodes the value stored at key into v. It reports false when the
// key is absent.
func (s *Storage) GetItem(ctx context.Context, key string, v any) (bool, error) {
	data, err := s.sys.Retrieve(ctx, s.key(key))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SetItem encodes v as JSON and stores it at key.
func (s *Storage) SetItem(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.sys.Store(ctx, s.key(key), data)
}

// RemoveItem deletes key.
func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	return s.sys.Delete(ctx, s.key(key))
}

func (s *Storage) key(key string) string {
	return s.namespace + key + ".json"
}
