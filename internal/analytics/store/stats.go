package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/serroba/campaign-links/internal/analytics"
	"github.com/serroba/campaign-links/internal/snapshot"
	"go.uber.org/zap"
)

// StatsKey is the snapshot key holding aggregated campaign counters.
const StatsKey = "campaign-links:stats"

// CampaignStats counts lifecycle events for one campaign.
type CampaignStats struct {
	Campaign   string    `json:"campaign"`
	Generated  int       `json:"generated"`
	Shortened  int       `json:"shortened"`
	Deleted    int       `json:"deleted"`
	LastActive time.Time `json:"lastActive"`
}

// Stats aggregates link events per campaign and persists the totals as a snapshot.
type Stats struct {
	mu        sync.Mutex
	campaigns map[string]*CampaignStats
	storage   snapshot.Store
	logger    *zap.Logger
}

// NewStats creates an aggregating analytics store. Call Load to resume from a previous snapshot.
func NewStats(storage snapshot.Store, logger *zap.Logger) *Stats {
	return &Stats{
		campaigns: make(map[string]*CampaignStats),
		storage:   storage,
		logger:    logger,
	}
}

// Load restores counters from storage. Unreadable snapshots start from zero.
// The lock is held across the read so a concurrent record cannot be rolled back.
func (s *Stats) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.storage.Load(ctx, StatsKey)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			return nil
		}

		return errors.Wrap(err, "load campaign stats")
	}

	var list []CampaignStats
	if err := json.Unmarshal(data, &list); err != nil {
		s.logger.Warn("discarding unreadable campaign stats", zap.Error(err))

		return nil
	}

	s.campaigns = make(map[string]*CampaignStats, len(list))
	for i := range list {
		s.campaigns[list[i].Campaign] = &list[i]
	}

	return nil
}

func (s *Stats) SaveLinkGenerated(ctx context.Context, event *analytics.LinkGeneratedEvent) error {
	return s.record(ctx, event.Campaign, event.CreatedAt, func(c *CampaignStats) { c.Generated++ })
}

func (s *Stats) SaveLinkShortened(ctx context.Context, event *analytics.LinkShortenedEvent) error {
	return s.record(ctx, event.Campaign, event.ShortenedAt, func(c *CampaignStats) { c.Shortened++ })
}

func (s *Stats) SaveLinkDeleted(ctx context.Context, event *analytics.LinkDeletedEvent) error {
	return s.record(ctx, event.Campaign, event.DeletedAt, func(c *CampaignStats) { c.Deleted++ })
}

// Campaigns returns the counters sorted by campaign name.
func (s *Stats) Campaigns() []CampaignStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listLocked()
}

func (s *Stats) record(ctx context.Context, campaign string, at time.Time, apply func(*CampaignStats)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[campaign]
	if !ok {
		c = &CampaignStats{Campaign: campaign}
		s.campaigns[campaign] = c
	}

	apply(c)

	if at.After(c.LastActive) {
		c.LastActive = at
	}

	data, err := json.Marshal(s.listLocked())
	if err != nil {
		return errors.Wrap(err, "encode campaign stats")
	}

	return errors.Wrap(s.storage.Save(ctx, StatsKey, data), "persist campaign stats")
}

func (s *Stats) listLocked() []CampaignStats {
	out := make([]CampaignStats, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		out = append(out, *c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Campaign < out[j].Campaign })

	return out
}

// Compile-time check.
var _ analytics.Store = (*Stats)(nil)
