package history

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/serroba/campaign-links/internal/snapshot"
	"go.uber.org/zap"
)

// StorageKey is the snapshot key holding the history collection.
const StorageKey = "campaign-links:history"

// DefaultLimit bounds the collection; older entries are evicted on append.
const DefaultLimit = 10

// Store is the ordered, bounded link history. Index 0 is the newest link.
type Store struct {
	mu      sync.RWMutex
	links   []Link
	limit   int
	storage snapshot.Store
	logger  *zap.Logger

	// persistMu is held from a mutation through its save so snapshots
	// reach storage in mutation order.
	persistMu sync.Mutex
}

// NewStore creates an empty history backed by storage. A limit below 1 uses DefaultLimit.
func NewStore(storage snapshot.Store, limit int, logger *zap.Logger) *Store {
	if limit < 1 {
		limit = DefaultLimit
	}

	return &Store{
		storage: storage,
		limit:   limit,
		logger:  logger,
	}
}

// Load replaces the in-memory collection with the persisted snapshot.
// A missing or unreadable snapshot leaves the history empty; only storage
// failures are returned.
func (s *Store) Load(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	data, err := s.storage.Load(ctx, StorageKey)
	if err != nil {
		s.mu.Lock()
		s.links = nil
		s.mu.Unlock()

		if errors.Is(err, snapshot.ErrNotFound) {
			return nil
		}

		return errors.Wrap(err, "load history")
	}

	var links []Link
	if err := json.Unmarshal(data, &links); err != nil {
		s.logger.Warn("discarding unreadable history snapshot", zap.Error(err))

		links = nil
	}

	if len(links) > s.limit {
		links = links[:s.limit]
	}

	s.mu.Lock()
	s.links = links
	s.mu.Unlock()

	s.logger.Debug("history loaded", zap.Int("count", len(links)))

	return nil
}

// Persist writes the whole collection to storage.
func (s *Store) Persist(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	return s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) error {
	s.mu.RLock()
	data, err := json.Marshal(s.snapshotLocked())
	s.mu.RUnlock()

	if err != nil {
		return errors.Wrap(err, "encode history")
	}

	return errors.Wrap(s.storage.Save(ctx, StorageKey, data), "persist history")
}

// Append inserts link at the head and evicts from the tail past the limit.
func (s *Store) Append(ctx context.Context, link Link) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	s.links = append([]Link{link.clone()}, s.links...)

	if len(s.links) > s.limit {
		evicted := s.links[s.limit:]
		s.links = s.links[:s.limit]

		for _, l := range evicted {
			s.logger.Debug("history entry evicted", zap.String("id", l.ID))
		}
	}
	s.mu.Unlock()

	return s.persist(ctx)
}

// UpdateHead sets the short link on the most recently appended entry.
// An empty history is left untouched.
func (s *Store) UpdateHead(ctx context.Context, shortURL, providerID string) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	if len(s.links) == 0 {
		s.mu.Unlock()

		return nil
	}

	s.links[0].setShortLink(shortURL, providerID)
	s.mu.Unlock()

	return s.persist(ctx)
}

// UpdateByID sets the short link on the entry with the given id.
// It reports false, without persisting, when no entry matches.
func (s *Store) UpdateByID(ctx context.Context, id, shortURL, providerID string) (bool, error) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()

	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()

		return false, nil
	}

	s.links[i].setShortLink(shortURL, providerID)
	s.mu.Unlock()

	return true, s.persist(ctx)
}

// DeleteByID removes the entry with the given id.
// It reports false, without persisting, when no entry matches.
func (s *Store) DeleteByID(ctx context.Context, id string) (bool, error) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()

	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()

		return false, nil
	}

	s.links = append(s.links[:i:i], s.links[i+1:]...)
	s.mu.Unlock()

	return true, s.persist(ctx)
}

// Get returns a copy of the entry with the given id.
func (s *Store) Get(id string) (Link, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Link{}, false
	}

	return s.links[i].clone(), true
}

// List returns a copy of the collection, newest first.
func (s *Store) List() []Link {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.links)
}

// Limit returns the maximum number of entries kept.
func (s *Store) Limit() int {
	return s.limit
}

func (s *Store) indexLocked(id string) int {
	for i := range s.links {
		if s.links[i].ID == id {
			return i
		}
	}

	return -1
}

func (s *Store) snapshotLocked() []Link {
	out := make([]Link, len(s.links))
	for i, l := range s.links {
		out[i] = l.clone()
	}

	return out
}
