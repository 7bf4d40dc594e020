package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/serroba/campaign-links/internal/snapshot"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a SQLite implementation of snapshot.Store.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens/creates a SQLite database at dsn and initializes the schema.
// Pass ":memory:" for an in-memory database (useful for tests).
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite database")
	}

	// a single connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db}
	if err := s.init(); err != nil {
		_ = db.Close()

		return nil, err
	}

	return s, nil
}

func (s *SQLiteStore) init() error {
	if _, err := s.db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		return errors.Wrap(err, "enable WAL mode")
	}

	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		key TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	);`)

	return errors.Wrap(err, "initialize schema")
}

func (s *SQLiteStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data, time.Now().UnixNano(),
	)

	return errors.Wrapf(err, "save snapshot %s", key)
}

func (s *SQLiteStore) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte

	err := s.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE key = ?`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, snapshot.ErrNotFound
		}

		return nil, errors.Wrapf(err, "load snapshot %s", key)
	}

	return data, nil
}

// Ping checks the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Shutdown closes the database.
func (s *SQLiteStore) Shutdown() error {
	return s.db.Close()
}

// Compile-time check.
var _ snapshot.Store = (*SQLiteStore)(nil)
