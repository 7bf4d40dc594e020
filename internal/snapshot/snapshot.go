// Package snapshot defines the key-value contract used to persist whole-state
// snapshots such as the link history and the provider configuration.
package snapshot

import (
	"context"

	"github.com/cockroachdb/errors"
)

// ErrNotFound is returned by Load when nothing was saved under the key.
var ErrNotFound = errors.New("snapshot not found")

// Store reads and writes opaque snapshots by key. Save replaces any previous value.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
