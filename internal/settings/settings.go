// Package settings holds the process-wide short-link provider configuration.
// It is loaded once at startup and written only by an explicit Save.
package settings

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/serroba/campaign-links/internal/snapshot"
	"go.uber.org/zap"
)

// StorageKey is the snapshot key holding the provider configuration.
const StorageKey = "campaign-links:provider-config"

// ProviderConfig is the short-link provider API key and optional custom domain.
type ProviderConfig struct {
	APIKey string `doc:"Provider API key"         json:"apiKey"`
	Domain string `doc:"Custom short-link domain" example:"links.example.com" json:"domain,omitempty"`
}

// HasAPIKey reports whether an API key is configured.
func (c ProviderConfig) HasAPIKey() bool {
	return c.APIKey != ""
}

// Masked returns a copy with all but the last four characters of the API key hidden.
func (c ProviderConfig) Masked() ProviderConfig {
	if n := len(c.APIKey); n > 4 {
		c.APIKey = strings.Repeat("*", n-4) + c.APIKey[n-4:]
	} else if n > 0 {
		c.APIKey = strings.Repeat("*", n)
	}

	return c
}

// Settings owns the active ProviderConfig.
type Settings struct {
	mu      sync.RWMutex
	active  ProviderConfig
	storage snapshot.Store
	logger  *zap.Logger
}

// New creates settings backed by storage. seed is used until a persisted
// configuration is loaded.
func New(storage snapshot.Store, seed ProviderConfig, logger *zap.Logger) *Settings {
	return &Settings{
		active:  seed,
		storage: storage,
		logger:  logger,
	}
}

// Load reads the persisted configuration. A missing or unreadable snapshot
// keeps the current (seed) value; only storage failures are returned.
func (s *Settings) Load(ctx context.Context) error {
	data, err := s.storage.Load(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			return nil
		}

		return errors.Wrap(err, "load provider config")
	}

	var cfg ProviderConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		s.logger.Warn("discarding unreadable provider config", zap.Error(err))

		return nil
	}

	s.mu.Lock()
	s.active = cfg
	s.mu.Unlock()

	return nil
}

// Current returns the active configuration.
func (s *Settings) Current() ProviderConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.active
}

// Save persists cfg and makes it active. On a storage failure the active
// configuration is left unchanged.
func (s *Settings) Save(ctx context.Context, cfg ProviderConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode provider config")
	}

	if err := s.storage.Save(ctx, StorageKey, data); err != nil {
		return errors.Wrap(err, "persist provider config")
	}

	s.mu.Lock()
	s.active = cfg
	s.mu.Unlock()

	s.logger.Info("provider config saved",
		zap.Bool("hasApiKey", cfg.HasAPIKey()),
		zap.String("domain", cfg.Domain),
	)

	return nil
}
