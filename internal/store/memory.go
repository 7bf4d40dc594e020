package store

import (
	"context"
	"sync"

	"github.com/serroba/campaign-links/internal/snapshot"
)

// MemoryStore is an in-memory implementation of snapshot.Store.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewMemoryStore creates a new in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snapshots: make(map[string][]byte),
	}
}

func (m *MemoryStore) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshots[key] = append([]byte(nil), data...)

	return nil
}

func (m *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.snapshots[key]
	if !ok {
		return nil, snapshot.ErrNotFound
	}

	return append([]byte(nil), data...), nil
}

// Compile-time check.
var _ snapshot.Store = (*MemoryStore)(nil)
