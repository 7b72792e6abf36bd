// internal/infrastructure/storage/memory.go
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryRepository is an in-process Repository used by tests and local
// development. Values round-trip through JSON so stored state behaves
// exactly like the Redis implementation, decode errors included.
type MemoryRepository struct {
	mu    sync.RWMutex
	blobs map[string][]byte

	// FailSaves makes every Save return an error, for exercising the
	// best-effort persistence path.
	FailSaves bool
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{blobs: make(map[string][]byte)}
}

// Load implements Repository.
func (m *MemoryRepository) Load(ctx context.Context, key string, dest interface{}) error {
	m.mu.RLock()
	data, ok := m.blobs[key]
	m.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode %q: %w", key, err)
	}

	return nil
}

// Save implements Repository.
func (m *MemoryRepository) Save(ctx context.Context, key string, value interface{}) error {
	if m.FailSaves {
		return fmt.Errorf("failed to save %q: storage unavailable", key)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}

	m.mu.Lock()
	m.blobs[key] = data
	m.mu.Unlock()

	return nil
}

// Clear implements Repository.
func (m *MemoryRepository) Clear(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.blobs, key)
	m.mu.Unlock()
	return nil
}
