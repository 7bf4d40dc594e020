package session

import (
	"context"

	"github.com/serroba/campaign-links/internal/settings"
	"github.com/serroba/campaign-links/internal/shortlink"
	"go.uber.org/zap"
)

// ProviderConfig returns the active provider configuration.
func (c *Controller) ProviderConfig() settings.ProviderConfig {
	return c.settings.Current()
}

// DraftSettings returns the configuration being edited.
func (c *Controller) DraftSettings() settings.ProviderConfig {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.draft
}

// EditSettings replaces the draft. The active configuration is unchanged until SaveSettings.
func (c *Controller) EditSettings(cfg settings.ProviderConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft = cfg
}

// DiscardDraft resets the draft to the active configuration.
func (c *Controller) DiscardDraft() {
	active := c.settings.Current()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft = active
}

// SaveSettings persists the draft and makes it active.
func (c *Controller) SaveSettings(ctx context.Context) (settings.ProviderConfig, error) {
	draft := c.DraftSettings()

	if err := c.settings.Save(ctx, draft); err != nil {
		return settings.ProviderConfig{}, err
	}

	c.logger.Info("provider settings saved", zap.Bool("hasApiKey", draft.HasAPIKey()))

	return draft, nil
}

// TestCredential checks an API key against the provider. An empty apiKey
// tests the draft key.
func (c *Controller) TestCredential(ctx context.Context, apiKey string) (string, error) {
	if apiKey == "" {
		apiKey = c.DraftSettings().APIKey
	}

	if apiKey == "" {
		return "", shortlink.ErrMissingCredential
	}

	c.pending.Add(1)
	defer c.pending.Add(-1)

	return c.shortener.TestCredential(ctx, apiKey)
}
