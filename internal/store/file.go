package store

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/cockroachdb/errors"
	"github.com/serroba/campaign-links/internal/snapshot"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// FileStore keeps one JSON file per key under a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed snapshot store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, unsafeKeyChars.ReplaceAllString(key, "_")+".json")
}

func (f *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, snapshot.ErrNotFound
	}

	if err != nil {
		return nil, errors.Wrapf(err, "read snapshot %s", key)
	}

	return data, nil
}

// Save writes through a temp file and renames it over the target.
func (f *FileStore) Save(_ context.Context, key string, data []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return errors.Wrap(err, "create snapshot dir")
	}

	target := f.path(key)

	tmp, err := os.CreateTemp(f.dir, filepath.Base(target)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp snapshot")
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return errors.Wrapf(err, "write snapshot %s", key)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())

		return errors.Wrapf(err, "close snapshot %s", key)
	}

	return errors.Wrapf(os.Rename(tmp.Name(), target), "replace snapshot %s", key)
}

// Compile-time check.
var _ snapshot.Store = (*FileStore)(nil)
