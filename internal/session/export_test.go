package session_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/serroba/campaign-links/internal/history"
	"github.com/serroba/campaign-links/internal/session"
	"github.com/serroba/campaign-links/internal/settings"
	"github.com/serroba/campaign-links/internal/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	short := "https://rebrand.ly/a"
	links := []history.Link{
		{
			OriginalURL:  "https://example.com",
			TrackingURL:  "https://example.com/?utm_source=newsletter&utm_medium=email&utm_campaign=spring",
			ShortURL:     &short,
			HasShortLink: true,
			Params:       tracking.Params{Source: "newsletter", Medium: "email", Campaign: "spring"},
			CreatedAt:    time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC),
		},
		{
			OriginalURL: "https://example.com/b",
			TrackingURL: "https://example.com/b?utm_source=x",
			Params:      tracking.Params{Source: "x", Medium: "y", Campaign: "sale, part 2"},
			CreatedAt:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	lines := strings.Split(string(session.ExportCSV(links)), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "Campaign,Source,Medium,Original URL,Tracking URL,Short URL,Created,Clicks", lines[0])
	assert.Equal(t, "spring,newsletter,email,https://example.com,"+links[0].TrackingURL+",https://rebrand.ly/a,2026-03-14,0", lines[1])
	assert.Equal(t, "sale, part 2,x,y,https://example.com/b,https://example.com/b?utm_source=x,N/A,2026-03-01,0", lines[2])
}

func TestExportCSV_Empty(t *testing.T) {
	assert.Equal(t, "Campaign,Source,Medium,Original URL,Tracking URL,Short URL,Created,Clicks", string(session.ExportCSV(nil)))
}

func TestController_Export(t *testing.T) {
	f := newFixture(t, settings.ProviderConfig{}, nil)
	f.ctrl.SetForm(validForm())
	_, err := f.ctrl.Generate(context.Background())
	require.NoError(t, err)

	data, name := f.ctrl.Export()

	assert.Equal(t, "utm-links-2026-03-14.csv", name)
	assert.Contains(t, string(data), "spring_sale,newsletter,email,https://example.com,")
	assert.Contains(t, string(data), ",N/A,2026-03-14,0")
}
