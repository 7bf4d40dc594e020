package session_test

import (
	"context"
	"errors"
	"sync"

	"github.com/serroba/campaign-links/internal/snapshot"
)

type failingStorage struct {
	mu    sync.Mutex
	saves int
}

func (f *failingStorage) Load(_ context.Context, _ string) ([]byte, error) {
	return nil, snapshot.ErrNotFound
}

func (f *failingStorage) Save(_ context.Context, _ string, _ []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.saves++

	return errors.New("disk full")
}
