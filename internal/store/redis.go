package store

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/serroba/campaign-links/internal/snapshot"
)

// RedisStore is a Redis implementation of snapshot.Store.
type RedisStore struct {
	client *redis.Client
	prefix string // "snapshot:" for key->data (string keys)
}

// NewRedisStore creates a new Redis-backed snapshot store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "snapshot:",
	}
}

func (r *RedisStore) Save(ctx context.Context, key string, data []byte) error {
	return r.client.Set(ctx, r.prefix+key, data, 0).Err()
}

func (r *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, snapshot.ErrNotFound
		}

		return nil, errors.Wrapf(err, "redis get %s", key)
	}

	return data, nil
}

// Ping checks Redis connectivity.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Shutdown is a no-op; the client is shared and closed by its owner.
func (r *RedisStore) Shutdown() error {
	return nil
}

// Compile-time check.
var _ snapshot.Store = (*RedisStore)(nil)
