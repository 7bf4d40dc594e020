package store

import (
	"context"

	"github.com/serroba/campaign-links/internal/analytics"
	"go.uber.org/zap"
)

// Noop is a no-op implementation of analytics.Store that logs events.
type Noop struct {
	logger *zap.Logger
}

// NewNoop creates a new no-op analytics store.
func NewNoop(logger *zap.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) SaveLinkGenerated(_ context.Context, event *analytics.LinkGeneratedEvent) error {
	n.logger.Info("link generated event received",
		zap.String("id", event.ID),
		zap.String("trackingUrl", event.TrackingURL),
		zap.String("campaign", event.Campaign),
		zap.String("source", event.Source),
		zap.String("medium", event.Medium),
		zap.Time("createdAt", event.CreatedAt),
	)

	return nil
}

func (n *Noop) SaveLinkShortened(_ context.Context, event *analytics.LinkShortenedEvent) error {
	n.logger.Info("link shortened event received",
		zap.String("id", event.ID),
		zap.String("shortUrl", event.ShortURL),
		zap.String("providerId", event.ProviderID),
		zap.String("campaign", event.Campaign),
		zap.Time("shortenedAt", event.ShortenedAt),
	)

	return nil
}

func (n *Noop) SaveLinkDeleted(_ context.Context, event *analytics.LinkDeletedEvent) error {
	n.logger.Info("link deleted event received",
		zap.String("id", event.ID),
		zap.String("campaign", event.Campaign),
		zap.Time("deletedAt", event.DeletedAt),
	)

	return nil
}
