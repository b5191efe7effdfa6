// internal/store/memory.go
//
// In-memory implementation of KV.
// Used when no database is configured, and in tests.
//
// Characteristics:
//   - Stores raw blobs keyed by string in a map; values are copied in and out.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"
)

// memory is an in-memory map-based KV implementation.
type memory struct {
	mu    sync.RWMutex      // guards blobs
	blobs map[string][]byte // keyed by storage key
}

// NewMemory constructs a new in-memory KV.
func NewMemory() KV {
	return &memory{blobs: make(map[string][]byte)}
}

// Get returns a copy of the blob under key, or ErrNotFound.
func (m *memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.blobs[key]; ok {
		return append([]byte(nil), b...), nil
	}
	return nil, ErrNotFound
}

// Put stores a copy of value under key, replacing any previous blob.
func (m *memory) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = append([]byte(nil), value...)
	return nil
}
