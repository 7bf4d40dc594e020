package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/serroba/campaign-links/internal/analytics"
	analyticsstore "github.com/serroba/campaign-links/internal/analytics/store"
	snapshotstore "github.com/serroba/campaign-links/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStats(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

	t.Run("aggregates per campaign", func(t *testing.T) {
		stats := analyticsstore.NewStats(snapshotstore.NewMemoryStore(), zap.NewNop())

		require.NoError(t, stats.SaveLinkGenerated(ctx, &analytics.LinkGeneratedEvent{Campaign: "spring", CreatedAt: at}))
		require.NoError(t, stats.SaveLinkGenerated(ctx, &analytics.LinkGeneratedEvent{Campaign: "spring", CreatedAt: at}))
		require.NoError(t, stats.SaveLinkShortened(ctx, &analytics.LinkShortenedEvent{Campaign: "spring", ShortenedAt: at.Add(time.Minute)}))
		require.NoError(t, stats.SaveLinkGenerated(ctx, &analytics.LinkGeneratedEvent{Campaign: "autumn", CreatedAt: at}))
		require.NoError(t, stats.SaveLinkDeleted(ctx, &analytics.LinkDeletedEvent{Campaign: "autumn", DeletedAt: at}))

		got := stats.Campaigns()
		require.Len(t, got, 2)

		assert.Equal(t, "autumn", got[0].Campaign)
		assert.Equal(t, 1, got[0].Generated)
		assert.Equal(t, 1, got[0].Deleted)

		assert.Equal(t, "spring", got[1].Campaign)
		assert.Equal(t, 2, got[1].Generated)
		assert.Equal(t, 1, got[1].Shortened)
		assert.True(t, got[1].LastActive.Equal(at.Add(time.Minute)))
	})

	t.Run("survives reload", func(t *testing.T) {
		backing := snapshotstore.NewMemoryStore()
		first := analyticsstore.NewStats(backing, zap.NewNop())
		require.NoError(t, first.SaveLinkGenerated(ctx, &analytics.LinkGeneratedEvent{Campaign: "spring", CreatedAt: at}))

		second := analyticsstore.NewStats(backing, zap.NewNop())
		require.NoError(t, second.Load(ctx))
		require.NoError(t, second.SaveLinkGenerated(ctx, &analytics.LinkGeneratedEvent{Campaign: "spring", CreatedAt: at}))

		assert.Equal(t, 2, second.Campaigns()[0].Generated)
	})

	t.Run("unreadable snapshot starts from zero", func(t *testing.T) {
		backing := snapshotstore.NewMemoryStore()
		require.NoError(t, backing.Save(ctx, analyticsstore.StatsKey, []byte("garbage")))

		stats := analyticsstore.NewStats(backing, zap.NewNop())

		require.NoError(t, stats.Load(ctx))
		assert.Empty(t, stats.Campaigns())
	})
}

func TestStats_ReloadDoesNotDropConcurrentEvents(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)
	storage := newBlockingLoadStorage()
	stats := analyticsstore.NewStats(storage, zap.NewNop())
	require.NoError(t, stats.SaveLinkGenerated(ctx, &analytics.LinkGeneratedEvent{Campaign: "spring", CreatedAt: at}))

	storage.blockNextLoad()

	loaded := make(chan error, 1)
	go func() { loaded <- stats.Load(ctx) }()

	<-storage.entered

	recorded := make(chan error, 1)
	go func() {
		recorded <- stats.SaveLinkGenerated(ctx, &analytics.LinkGeneratedEvent{Campaign: "spring", CreatedAt: at})
	}()

	assert.Never(t, func() bool { return len(recorded) > 0 }, 50*time.Millisecond, 5*time.Millisecond)

	close(storage.release)
	require.NoError(t, <-loaded)
	require.NoError(t, <-recorded)

	assert.Equal(t, 2, stats.Campaigns()[0].Generated)

	reloaded := analyticsstore.NewStats(storage, zap.NewNop())
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, 2, reloaded.Campaigns()[0].Generated)
}
