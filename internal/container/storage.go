package container

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/campaign-links/internal/snapshot"
	"github.com/serroba/campaign-links/internal/store"
	"go.uber.org/zap"
)

// Storage backends.
const (
	StorageSQLite   = "sqlite"
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// RedisClient owns the shared Redis connection so it is closed once on shutdown.
type RedisClient struct {
	*redis.Client
}

// Shutdown closes the connection.
func (r *RedisClient) Shutdown() error {
	return r.Close()
}

// RedisPackage provides a lazily connected Redis client.
func RedisPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*RedisClient, error) {
		opts := do.MustInvoke[*Options](i)

		return &RedisClient{Client: redis.NewClient(&redis.Options{Addr: opts.RedisAddr})}, nil
	})
}

// StoragePackage provides the snapshot store selected by Options.Storage,
// optionally behind a Redis read cache.
func StoragePackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (snapshot.Store, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		backend, err := newSnapshotStore(i, opts)
		if err != nil {
			return nil, err
		}

		logger.Info("snapshot storage ready", zap.String("backend", opts.Storage))

		if opts.CacheTTL > 0 && opts.Storage != StorageRedis && opts.Storage != StorageMemory {
			client := do.MustInvoke[*RedisClient](i)

			return store.NewRedisCacheStore(backend, client.Client, time.Duration(opts.CacheTTL)*time.Second), nil
		}

		return backend, nil
	})
}

func newSnapshotStore(i *do.Injector, opts *Options) (snapshot.Store, error) {
	switch opts.Storage {
	case StorageSQLite:
		s, err := store.NewSQLiteStore(opts.SQLitePath)
		if err != nil {
			return nil, err
		}

		return s, nil
	case StorageFile:
		return store.NewFileStore(opts.FileDir), nil
	case StorageRedis:
		return store.NewRedisStore(do.MustInvoke[*RedisClient](i).Client), nil
	case StoragePostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err := pgxpool.New(ctx, opts.PostgresURL)
		if err != nil {
			return nil, errors.Wrap(err, "connect to postgres")
		}

		pg := store.NewPostgresStore(pool)
		if err := pg.Migrate(ctx); err != nil {
			pool.Close()

			return nil, err
		}

		return pg, nil
	case StorageMemory:
		return store.NewMemoryStore(), nil
	default:
		return nil, errors.Newf("unknown storage backend %q", opts.Storage)
	}
}
