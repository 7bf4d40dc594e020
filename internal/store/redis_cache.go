package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/campaign-links/internal/snapshot"
)

// RedisCacheStore wraps a snapshot.Store with Redis caching for reads.
type RedisCacheStore struct {
	store  snapshot.Store
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCacheStore creates a new Redis-cached snapshot store decorator.
func NewRedisCacheStore(store snapshot.Store, client *redis.Client, ttl time.Duration) *RedisCacheStore {
	return &RedisCacheStore{
		store:  store,
		client: client,
		prefix: "snapshot-cache:",
		ttl:    ttl,
	}
}

// Save stores a snapshot in the underlying store and updates the cache.
func (r *RedisCacheStore) Save(ctx context.Context, key string, data []byte) error {
	if err := r.store.Save(ctx, key, data); err != nil {
		return err
	}

	// Write-through: update cache after successful save
	r.cache(ctx, key, data)

	return nil
}

// Load retrieves a snapshot, checking the cache first.
func (r *RedisCacheStore) Load(ctx context.Context, key string) ([]byte, error) {
	if data, err := r.client.Get(ctx, r.prefix+key).Bytes(); err == nil {
		return data, nil
	}

	// Cache miss - fetch from store
	data, err := r.store.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	r.cache(ctx, key, data)

	return data, nil
}

func (r *RedisCacheStore) cache(ctx context.Context, key string, data []byte) {
	_ = r.client.Set(ctx, r.prefix+key, data, r.ttl).Err()
}

// Ping checks the wrapped store when it supports pinging, then Redis.
func (r *RedisCacheStore) Ping(ctx context.Context) error {
	if p, ok := r.store.(interface{ Ping(context.Context) error }); ok {
		if err := p.Ping(ctx); err != nil {
			return err
		}
	}

	return r.client.Ping(ctx).Err()
}

// Shutdown shuts down the wrapped store. The Redis client is managed externally.
func (r *RedisCacheStore) Shutdown() error {
	if s, ok := r.store.(interface{ Shutdown() error }); ok {
		return s.Shutdown()
	}

	return nil
}

// Compile-time check.
var _ snapshot.Store = (*RedisCacheStore)(nil)
