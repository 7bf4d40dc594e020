package health_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/campaign-links/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockChecker struct {
	err error
}

func (m *mockChecker) Ping(_ context.Context) error {
	return m.err
}

func TestNewHandler(t *testing.T) {
	handler := health.NewHandler(map[string]health.Checker{"storage": &mockChecker{}})

	assert.NotNil(t, handler)
}

func TestHandler_Check(t *testing.T) {
	t.Run("returns ok when every dependency is healthy", func(t *testing.T) {
		handler := health.NewHandler(map[string]health.Checker{
			"storage": &mockChecker{},
			"events":  &mockChecker{},
		})

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Body.Status)
		assert.Equal(t, map[string]string{"storage": "healthy", "events": "healthy"}, resp.Body.Checks)
	})

	t.Run("returns degraded when a dependency is unhealthy", func(t *testing.T) {
		handler := health.NewHandler(map[string]health.Checker{
			"storage": &mockChecker{err: errors.New("connection refused")},
			"events":  &mockChecker{},
		})

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "degraded", resp.Body.Status)
		assert.Equal(t, "unhealthy", resp.Body.Checks["storage"])
		assert.Equal(t, "healthy", resp.Body.Checks["events"])
	})

	t.Run("no dependencies is ok", func(t *testing.T) {
		resp, err := health.NewHandler(nil).Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Body.Status)
		assert.Empty(t, resp.Body.Checks)
	})
}

func TestCheckerFunc(t *testing.T) {
	called := false
	checker := health.CheckerFunc(func(context.Context) error {
		called = true

		return nil
	})

	require.NoError(t, checker.Ping(context.Background()))
	assert.True(t, called)
}

func TestRedisChecker(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available at %s: %v", addr, err)
	}

	t.Run("NewRedisChecker creates checker", func(t *testing.T) {
		checker := health.NewRedisChecker(client)

		assert.NotNil(t, checker)
	})

	t.Run("Ping returns nil when redis is available", func(t *testing.T) {
		checker := health.NewRedisChecker(client)

		err := checker.Ping(context.Background())

		assert.NoError(t, err)
	})
}
