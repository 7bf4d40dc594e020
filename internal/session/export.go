package session

import (
	"strconv"
	"strings"

	"github.com/serroba/campaign-links/internal/history"
)

const (
	exportHeader      = "Campaign,Source,Medium,Original URL,Tracking URL,Short URL,Created,Clicks"
	exportNoShortLink = "N/A"
	exportDateLayout  = "2006-01-02"
)

// Export renders the whole history as comma-separated text along with a
// dated file name. Fields are written verbatim, without quoting.
func (c *Controller) Export() ([]byte, string) {
	data := ExportCSV(c.history.List())
	name := "utm-links-" + c.now().Format(exportDateLayout) + ".csv"

	return data, name
}

// ExportCSV renders links one per row under a header row.
func ExportCSV(links []history.Link) []byte {
	var b strings.Builder

	b.WriteString(exportHeader)

	for _, l := range links {
		short := l.ShortURLOrEmpty()
		if short == "" {
			short = exportNoShortLink
		}

		b.WriteByte('\n')
		b.WriteString(strings.Join([]string{
			l.Params.Campaign,
			l.Params.Source,
			l.Params.Medium,
			l.OriginalURL,
			l.TrackingURL,
			short,
			l.CreatedAt.Format(exportDateLayout),
			strconv.Itoa(l.ClickCount),
		}, ","))
	}

	return []byte(b.String())
}
