// internal/storage/storage.go
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a key has no value in the store.
var ErrNotFound = errors.New("storage: key not found")

// Store is the key-value persistence port the state stores depend on.
// Implementations must treat a missing key as ErrNotFound, never as an
// empty value.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// GetJSON reads a key and unmarshals its value into dest.
func GetJSON(s Store, key string, dest interface{}) error {
	raw, err := s.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return nil
}

// SetJSON marshals value and writes it under key.
func SetJSON(s Store, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	return s.Set(key, string(raw))
}
