// Package shortlink talks to the external link-shortening API.
package shortlink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the provider's API root.
	DefaultBaseURL = "https://api.rebrandly.com/v1"
	// DefaultTitle is used when no campaign name is available.
	DefaultTitle = "Campaign"

	apiKeyHeader = "apikey"
)

var leadingScheme = regexp.MustCompile(`(?i)^https?://`)

// CreateRequest describes a short link to create.
type CreateRequest struct {
	APIKey      string
	Destination string
	Title       string
	Domain      string
}

// Link is a created short link.
type Link struct {
	ShortURL   string
	ProviderID string
}

// Compile-time interface check
var _ Shortener = (*Client)(nil)

// Shortener is what the session needs from a provider.
type Shortener interface {
	CreateShortLink(ctx context.Context, req CreateRequest) (*Link, error)
	TestCredential(ctx context.Context, apiKey string) (string, error)
}

// Client is an HTTP client for the provider API. Calls are single-shot: no
// retries, and no timeout beyond what the http.Client carries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a provider client. An empty baseURL uses DefaultBaseURL and
// a nil httpClient uses a plain &http.Client{}.
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

type createLinkBody struct {
	Destination string      `json:"destination"`
	Title       string      `json:"title"`
	Domain      *domainBody `json:"domain,omitempty"`
}

type domainBody struct {
	FullName string `json:"fullName"`
}

type createLinkResponse struct {
	ID         string `json:"id"`
	ShortURL   string `json:"shortUrl"`
	DomainName string `json:"domainName"`
	Slashtag   string `json:"slashtag"`
}

type accountResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// CreateShortLink creates a short link pointing at req.Destination.
func (c *Client) CreateShortLink(ctx context.Context, req CreateRequest) (*Link, error) {
	const op = "create link"

	if req.APIKey == "" {
		return nil, ErrMissingCredential
	}

	body := createLinkBody{
		Destination: req.Destination,
		Title:       req.Title,
	}

	if body.Title == "" {
		body.Title = DefaultTitle
	}

	if domain := StripScheme(req.Domain); domain != "" {
		body.Domain = &domainBody{FullName: domain}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	var out createLinkResponse
	if err := c.do(ctx, op, http.MethodPost, "/links", req.APIKey, payload, &out); err != nil {
		return nil, err
	}

	link := &Link{ShortURL: out.ShortURL, ProviderID: out.ID}
	if link.ShortURL == "" {
		link.ShortURL = out.DomainName + "/" + out.Slashtag
	}

	if !strings.Contains(link.ShortURL, "://") {
		link.ShortURL = "https://" + link.ShortURL
	}

	c.logger.Info("short link created",
		zap.String("providerId", link.ProviderID),
		zap.String("shortUrl", link.ShortURL),
	)

	return link, nil
}

// TestCredential checks apiKey against the account endpoint and returns a
// message naming the account.
func (c *Client) TestCredential(ctx context.Context, apiKey string) (string, error) {
	const op = "fetch account"

	if apiKey == "" {
		return "", ErrMissingCredential
	}

	var out accountResponse
	if err := c.do(ctx, op, http.MethodGet, "/account", apiKey, nil, &out); err != nil {
		return "", err
	}

	identity := out.Email
	if identity == "" {
		identity = out.Username
	}

	return "Connected as " + identity, nil
}

func (c *Client) do(ctx context.Context, op, method, path, apiKey string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &NetworkError{Operation: op, Cause: err}
	}

	req.Header.Set(apiKeyHeader, apiKey)
	req.Header.Set("Accept", "application/json")

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("provider request", zap.String("method", method), zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Operation: op, Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Operation: op, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.handleHTTPError(op, resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &NetworkError{Operation: op, Cause: errors.Wrap(err, "decode response")}
	}

	return nil
}

func (c *Client) handleHTTPError(op string, status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}

	message := fmt.Sprintf("request failed with status %d", status)
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		message = payload.Message
	}

	c.logger.Warn("provider rejected request",
		zap.String("operation", op),
		zap.Int("status", status),
		zap.String("message", message),
	)

	return &ProviderError{Operation: op, StatusCode: status, Message: message}
}

// StripScheme removes a leading http:// or https:// and any trailing slash.
func StripScheme(domain string) string {
	return strings.TrimSuffix(leadingScheme.ReplaceAllString(strings.TrimSpace(domain), ""), "/")
}
