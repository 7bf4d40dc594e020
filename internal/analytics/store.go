package analytics

import "context"

// Store defines the interface for persisting link events.
type Store interface {
	SaveLinkGenerated(ctx context.Context, event *LinkGeneratedEvent) error
	SaveLinkShortened(ctx context.Context, event *LinkShortenedEvent) error
	SaveLinkDeleted(ctx context.Context, event *LinkDeletedEvent) error
}
