package storage

import (
	"encoding/json"
	"fmt"

	"github.com/taskerhq/tasker/internal/logging"
)

// Load reads and decodes the JSON value stored under key. An absent key
// returns def. A read or parse failure is logged and also returns def:
// corrupted persisted state must never crash the application. Date
// fields travel as RFC 3339 strings and rehydrate through time.Time;
// a null dueDate stays nil.
func Load[T any](b Backend, key string, def T) T {
	data, ok, err := b.Get(key)
	if err != nil {
		logging.Error.Printf("failed to read saved %s: %v", key, err)
		return def
	}
	if !ok {
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logging.Error.Printf("failed to parse saved %s: %v", key, err)
		return def
	}
	return v
}

// Save encodes v as JSON and writes it under key, overwriting any prior
// value. Every store mutation calls this synchronously; there is no
// batching or write coalescing.
func Save(b Backend, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := b.Put(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Remove deletes the value stored under key.
func Remove(b Backend, key string) error {
	return b.Delete(key)
}
