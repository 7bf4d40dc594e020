package store_test

import (
	"context"
	"sync"

	snapshotstore "github.com/serroba/campaign-links/internal/store"
)

// blockingLoadStorage holds the next Load until release is closed.
type blockingLoadStorage struct {
	*snapshotstore.MemoryStore

	mu        sync.Mutex
	blockNext bool
	entered   chan struct{}
	release   chan struct{}
}

func newBlockingLoadStorage() *blockingLoadStorage {
	return &blockingLoadStorage{
		MemoryStore: snapshotstore.NewMemoryStore(),
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
}

func (b *blockingLoadStorage) blockNextLoad() {
	b.mu.Lock()
	b.blockNext = true
	b.mu.Unlock()
}

func (b *blockingLoadStorage) Load(ctx context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	block := b.blockNext
	b.blockNext = false
	b.mu.Unlock()

	if block {
		close(b.entered)
		<-b.release
	}

	return b.MemoryStore.Load(ctx, key)
}
