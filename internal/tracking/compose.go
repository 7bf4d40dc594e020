package tracking

import (
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidURL is returned when a base URL is not an absolute URL.
var ErrInvalidURL = errors.New("invalid absolute url")

// Compose appends the campaign parameters to base.
//
// utm_source, utm_medium and utm_campaign are always written; utm_term and
// utm_content only when the matching field is non-empty. A key already present
// in base keeps its position and gets the new value. Unrelated parameters and
// the fragment are left as they are.
func Compose(base string, p Params) (string, error) {
	u, err := parseAbsolute(base)
	if err != nil {
		return "", err
	}

	if u.Path == "" && u.Opaque == "" {
		u.Path = "/"
	}

	q := parseOrderedQuery(u.RawQuery)
	q.set(ParamSource, p.Source)
	q.set(ParamMedium, p.Medium)
	q.set(ParamCampaign, p.Campaign)

	if p.Term != "" {
		q.set(ParamTerm, p.Term)
	}

	if p.Content != "" {
		q.set(ParamContent, p.Content)
	}

	u.RawQuery = q.encode()

	return u.String(), nil
}

// IsAbsoluteURL reports whether raw parses with both a scheme and a host.
func IsAbsoluteURL(raw string) bool {
	_, err := parseAbsolute(raw)

	return err == nil
}

func parseAbsolute(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidURL, err.Error())
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Wrapf(ErrInvalidURL, "%q has no scheme or host", raw)
	}

	return u, nil
}

// queryPair keeps the raw encoded form so untouched parameters round-trip unchanged.
type queryPair struct {
	key string
	raw string
}

type orderedQuery []queryPair

func parseOrderedQuery(rawQuery string) orderedQuery {
	var q orderedQuery

	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}

		key, _, _ := strings.Cut(part, "=")
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}

		q = append(q, queryPair{key: key, raw: part})
	}

	return q
}

func (q *orderedQuery) set(key, value string) {
	raw := url.QueryEscape(key) + "=" + url.QueryEscape(value)

	out := (*q)[:0]
	found := false

	for _, pair := range *q {
		if pair.key != key {
			out = append(out, pair)

			continue
		}

		// first occurrence is replaced in place, later duplicates are dropped
		if !found {
			out = append(out, queryPair{key: key, raw: raw})
			found = true
		}
	}

	if !found {
		out = append(out, queryPair{key: key, raw: raw})
	}

	*q = out
}

func (q orderedQuery) encode() string {
	parts := make([]string, len(q))
	for i, pair := range q {
		parts[i] = pair.raw
	}

	return strings.Join(parts, "&")
}
