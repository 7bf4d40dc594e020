package history_test

import (
	"context"
	"errors"
	"sync"

	"github.com/serroba/campaign-links/internal/snapshot"
	"github.com/serroba/campaign-links/internal/store"
)

var errMock = errors.New("mock error")

// mockStorage is a snapshot.Store test double that can be configured to fail.
type mockStorage struct {
	data    map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newMockStorage() *mockStorage {
	return &mockStorage{data: make(map[string][]byte)}
}

func (m *mockStorage) Load(_ context.Context, key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}

	data, ok := m.data[key]
	if !ok {
		return nil, snapshot.ErrNotFound
	}

	return data, nil
}

func (m *mockStorage) Save(_ context.Context, key string, data []byte) error {
	m.saves++

	if m.saveErr != nil {
		return m.saveErr
	}

	m.data[key] = data

	return nil
}

// blockingStorage holds the next Save until release is closed.
type blockingStorage struct {
	*store.MemoryStore

	mu        sync.Mutex
	blockNext bool
	entered   chan struct{}
	release   chan struct{}
}

func newBlockingStorage() *blockingStorage {
	return &blockingStorage{
		MemoryStore: store.NewMemoryStore(),
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
}

func (b *blockingStorage) blockNextSave() {
	b.mu.Lock()
	b.blockNext = true
	b.mu.Unlock()
}

func (b *blockingStorage) Save(ctx context.Context, key string, data []byte) error {
	b.mu.Lock()
	block := b.blockNext
	b.blockNext = false
	b.mu.Unlock()

	if block {
		close(b.entered)
		<-b.release
	}

	return b.MemoryStore.Save(ctx, key, data)
}
