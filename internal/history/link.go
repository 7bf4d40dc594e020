// Package history keeps the most recent generated links, newest first, and
// persists the whole collection as one JSON snapshot after every mutation.
package history

import (
	"time"

	"github.com/serroba/campaign-links/internal/tracking"
)

// Link is one generated tracking URL and its optional short link.
type Link struct {
	ID                  string          `json:"id"`
	OriginalURL         string          `json:"originalUrl"`
	TrackingURL         string          `json:"trackingUrl"`
	ShortURL            *string         `json:"shortUrl"`
	Params              tracking.Params `json:"params"`
	CreatedAt           time.Time       `json:"createdAt"`
	ClickCount          int             `json:"clickCount"`
	HasShortLink        bool            `json:"hasShortLink"`
	ShortLinkProviderID string          `json:"shortLinkProviderId,omitempty"`
}

// ShortURLOrEmpty returns the short URL or "" when none was created.
func (l Link) ShortURLOrEmpty() string {
	if l.ShortURL == nil {
		return ""
	}

	return *l.ShortURL
}

func (l *Link) setShortLink(shortURL, providerID string) {
	l.ShortURL = &shortURL
	l.HasShortLink = true
	l.ShortLinkProviderID = providerID
}

func (l Link) clone() Link {
	if l.ShortURL != nil {
		s := *l.ShortURL
		l.ShortURL = &s
	}

	return l
}
