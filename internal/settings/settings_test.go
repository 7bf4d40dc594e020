package settings_test

import (
	"context"
	"errors"
	"testing"

	"github.com/serroba/campaign-links/internal/settings"
	"github.com/serroba/campaign-links/internal/snapshot"
	"github.com/serroba/campaign-links/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingStorage struct {
	err error
}

func (f failingStorage) Load(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingStorage) Save(context.Context, string, []byte) error  { return f.err }

var _ snapshot.Store = failingStorage{}

func TestSettings_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("missing snapshot keeps the seed", func(t *testing.T) {
		s := settings.New(store.NewMemoryStore(), settings.ProviderConfig{APIKey: "seed"}, zap.NewNop())

		require.NoError(t, s.Load(ctx))
		assert.Equal(t, "seed", s.Current().APIKey)
	})

	t.Run("persisted config replaces the seed", func(t *testing.T) {
		backing := store.NewMemoryStore()
		require.NoError(t, backing.Save(ctx, settings.StorageKey, []byte(`{"apiKey":"k","domain":"go.example.com"}`)))

		s := settings.New(backing, settings.ProviderConfig{APIKey: "seed"}, zap.NewNop())

		require.NoError(t, s.Load(ctx))
		assert.Equal(t, settings.ProviderConfig{APIKey: "k", Domain: "go.example.com"}, s.Current())
	})

	t.Run("corrupt snapshot is discarded silently", func(t *testing.T) {
		backing := store.NewMemoryStore()
		require.NoError(t, backing.Save(ctx, settings.StorageKey, []byte(`nope`)))

		s := settings.New(backing, settings.ProviderConfig{}, zap.NewNop())

		require.NoError(t, s.Load(ctx))
		assert.False(t, s.Current().HasAPIKey())
	})

	t.Run("storage failure is returned", func(t *testing.T) {
		boom := errors.New("boom")
		s := settings.New(failingStorage{err: boom}, settings.ProviderConfig{}, zap.NewNop())

		assert.ErrorIs(t, s.Load(ctx), boom)
	})
}

func TestSettings_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and activates", func(t *testing.T) {
		backing := store.NewMemoryStore()
		s := settings.New(backing, settings.ProviderConfig{}, zap.NewNop())
		cfg := settings.ProviderConfig{APIKey: "k", Domain: "go.example.com"}

		require.NoError(t, s.Save(ctx, cfg))
		assert.Equal(t, cfg, s.Current())

		reloaded := settings.New(backing, settings.ProviderConfig{}, zap.NewNop())
		require.NoError(t, reloaded.Load(ctx))
		assert.Equal(t, cfg, reloaded.Current())
	})

	t.Run("failed save keeps the previous config", func(t *testing.T) {
		boom := errors.New("boom")
		s := settings.New(failingStorage{err: boom}, settings.ProviderConfig{APIKey: "old"}, zap.NewNop())

		err := s.Save(ctx, settings.ProviderConfig{APIKey: "new"})

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, "old", s.Current().APIKey)
	})
}

func TestProviderConfig_Masked(t *testing.T) {
	assert.Equal(t, "********cdef", settings.ProviderConfig{APIKey: "456789abcdef"}.Masked().APIKey)
	assert.Equal(t, "***", settings.ProviderConfig{APIKey: "abc"}.Masked().APIKey)
	assert.Equal(t, "", settings.ProviderConfig{}.Masked().APIKey)
}
