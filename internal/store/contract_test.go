package store_test

import (
	"context"
	"testing"

	"github.com/serroba/campaign-links/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises the behaviour every snapshot.Store must share.
// Keys are prefixed so integration runs against shared servers do not collide.
func runStoreContract(t *testing.T, s snapshot.Store, prefix string) {
	t.Helper()

	ctx := context.Background()

	t.Run("save and load", func(t *testing.T) {
		key := prefix + "history"

		require.NoError(t, s.Save(ctx, key, []byte(`[{"id":"a"}]`)))

		got, err := s.Load(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"a"}]`, string(got))
	})

	t.Run("overwrites existing snapshot", func(t *testing.T) {
		key := prefix + "config"

		require.NoError(t, s.Save(ctx, key, []byte(`{"apiKey":"old"}`)))
		require.NoError(t, s.Save(ctx, key, []byte(`{"apiKey":"new"}`)))

		got, err := s.Load(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `{"apiKey":"new"}`, string(got))
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, prefix+"a", []byte("1")))
		require.NoError(t, s.Save(ctx, prefix+"b", []byte("2")))

		a, err := s.Load(ctx, prefix+"a")
		require.NoError(t, err)

		b, err := s.Load(ctx, prefix+"b")
		require.NoError(t, err)

		assert.Equal(t, "1", string(a))
		assert.Equal(t, "2", string(b))
	})

	t.Run("load missing returns ErrNotFound", func(t *testing.T) {
		got, err := s.Load(ctx, prefix+"missing")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, snapshot.ErrNotFound)
	})
}
