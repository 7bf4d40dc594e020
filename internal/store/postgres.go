package store

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/campaign-links/internal/snapshot"
)

// PostgresStore is a PostgreSQL implementation of snapshot.Store.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed snapshot store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the snapshots table if it does not exist.
func (p *PostgresStore) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS snapshots (
			key        TEXT PRIMARY KEY,
			data       BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`

	_, err := p.pool.Exec(ctx, query)

	return errors.Wrap(err, "migrate snapshots table")
}

func (p *PostgresStore) Save(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO snapshots (key, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`

	_, err := p.pool.Exec(ctx, query, key, data, time.Now().UTC())

	return err
}

func (p *PostgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT data
		FROM snapshots
		WHERE key = $1
	`

	var data []byte

	err := p.pool.QueryRow(ctx, query, key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, snapshot.ErrNotFound
		}

		return nil, err
	}

	return data, nil
}

// Ping checks PostgreSQL connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Shutdown closes the connection pool.
func (p *PostgresStore) Shutdown() error {
	p.pool.Close()

	return nil
}

// Compile-time check.
var _ snapshot.Store = (*PostgresStore)(nil)
