package container

import (
	"context"
	"net/http"

	"github.com/samber/do"
	"github.com/serroba/campaign-links/internal/analytics"
	"github.com/serroba/campaign-links/internal/history"
	"github.com/serroba/campaign-links/internal/session"
	"github.com/serroba/campaign-links/internal/settings"
	"github.com/serroba/campaign-links/internal/shortlink"
	"github.com/serroba/campaign-links/internal/snapshot"
	"go.uber.org/zap"
)

// HistoryPackage provides the link history, loaded from storage.
func HistoryPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*history.Store, error) {
		opts := do.MustInvoke[*Options](i)
		storage := do.MustInvoke[snapshot.Store](i)
		logger := do.MustInvoke[*zap.Logger](i)

		limit := opts.HistoryLimit
		if limit <= 0 {
			limit = history.DefaultLimit
		}

		hist := history.NewStore(storage, limit, logger)
		if err := hist.Load(context.Background()); err != nil {
			return nil, err
		}

		return hist, nil
	})
}

// SettingsPackage provides the provider configuration, seeded from options
// and replaced by any saved configuration.
func SettingsPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*settings.Settings, error) {
		opts := do.MustInvoke[*Options](i)
		storage := do.MustInvoke[snapshot.Store](i)
		logger := do.MustInvoke[*zap.Logger](i)

		cfg := settings.New(storage, settings.ProviderConfig{APIKey: opts.APIKey, Domain: opts.Domain}, logger)
		if err := cfg.Load(context.Background()); err != nil {
			return nil, err
		}

		return cfg, nil
	})
}

// ShortLinkPackage provides the short-link provider client.
func ShortLinkPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (shortlink.Shortener, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		return shortlink.NewClient(opts.ProviderURL, &http.Client{}, logger), nil
	})
}

// SessionPackage provides the session controller.
func SessionPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*session.Controller, error) {
		return session.New(session.Deps{
			History:   do.MustInvoke[*history.Store](i),
			Settings:  do.MustInvoke[*settings.Settings](i),
			Shortener: do.MustInvoke[shortlink.Shortener](i),
			Events:    do.MustInvoke[analytics.Publishers](i),
			Logger:    do.MustInvoke[*zap.Logger](i),
		})
	})
}
