package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/palmcrest/showcase/internal/listing"
)

// ListingFetcher defines the interface for fetching listings from a feed.
// This interface is implemented by *Client and can be used for testing.
type ListingFetcher interface {
	FetchListings(ctx context.Context, query ListingQuery) ([]listing.Listing, error)
}

// Ensure Client implements ListingFetcher at compile time.
var _ ListingFetcher = (*Client)(nil)

// Client talks to the brokerage listings HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// ListingsResponse is the payload of GET /api/listings.
type ListingsResponse struct {
	Items []listing.Listing `json:"items"`
}

// ListingQuery configures /api/listings requests.
type ListingQuery struct {
	Community    string
	FeaturedOnly bool
	Limit        int
}

const (
	defaultUserAgent = "showcase/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for the feed at rawURL. A bare host:port gets an
// http scheme.
func NewClient(rawURL string) (*Client, error) {
	base, err := parseBaseURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized feed root.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchListings retrieves listings and normalizes them.
func (c *Client) FetchListings(ctx context.Context, query ListingQuery) ([]listing.Listing, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if community := strings.TrimSpace(query.Community); community != "" {
		values.Set("community", community)
	}
	if query.FeaturedOnly {
		values.Set("featured", "1")
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	rel := &url.URL{Path: "/api/listings", RawQuery: values.Encode()}
	var payload ListingsResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return listing.Normalize(payload.Items), nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("feed url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse feed url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("feed url %q has no host", raw)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
