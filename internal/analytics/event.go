package analytics

import "time"

// Topics for link lifecycle events.
const (
	TopicLinkGenerated = "link.generated"
	TopicLinkShortened = "link.shortened"
	TopicLinkDeleted   = "link.deleted"
)

// LinkGeneratedEvent represents an event emitted when a tracking URL is generated.
type LinkGeneratedEvent struct {
	ID          string    `json:"id"`
	OriginalURL string    `json:"originalUrl"`
	TrackingURL string    `json:"trackingUrl"`
	Source      string    `json:"source"`
	Medium      string    `json:"medium"`
	Campaign    string    `json:"campaign"`
	Term        string    `json:"term,omitempty"`
	Content     string    `json:"content,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LinkShortenedEvent represents an event emitted when a short link is created for a history entry.
type LinkShortenedEvent struct {
	ID          string    `json:"id"`
	ShortURL    string    `json:"shortUrl"`
	ProviderID  string    `json:"providerId"`
	Campaign    string    `json:"campaign"`
	ShortenedAt time.Time `json:"shortenedAt"`
}

// LinkDeletedEvent represents an event emitted when a history entry is removed.
type LinkDeletedEvent struct {
	ID        string    `json:"id"`
	Campaign  string    `json:"campaign"`
	DeletedAt time.Time `json:"deletedAt"`
}
