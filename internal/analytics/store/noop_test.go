package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/serroba/campaign-links/internal/analytics"
	"github.com/serroba/campaign-links/internal/analytics/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewNoop(t *testing.T) {
	logger := zap.NewNop()
	noop := store.NewNoop(logger)

	assert.NotNil(t, noop)
}

func TestNoop_SaveLinkGenerated(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	noop := store.NewNoop(zap.New(core))

	event := &analytics.LinkGeneratedEvent{
		ID:          "abc123",
		OriginalURL: "https://example.com",
		TrackingURL: "https://example.com/?utm_source=newsletter",
		Campaign:    "spring_sale",
		CreatedAt:   time.Now(),
	}

	err := noop.SaveLinkGenerated(context.Background(), event)

	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc123", logs.All()[0].ContextMap()["id"])
}

func TestNoop_SaveLinkShortened(t *testing.T) {
	noop := store.NewNoop(zap.NewNop())

	event := &analytics.LinkShortenedEvent{
		ID:          "abc123",
		ShortURL:    "https://rebrand.ly/x",
		ProviderID:  "p1",
		ShortenedAt: time.Now(),
	}

	err := noop.SaveLinkShortened(context.Background(), event)

	require.NoError(t, err)
}

func TestNoop_SaveLinkDeleted(t *testing.T) {
	noop := store.NewNoop(zap.NewNop())

	err := noop.SaveLinkDeleted(context.Background(), &analytics.LinkDeletedEvent{ID: "abc123", DeletedAt: time.Now()})

	require.NoError(t, err)
}
