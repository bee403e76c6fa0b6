package httpclient

import (
	"context"
	"net/http"
	"time"
)

// ClientType represents the type of HTTP client configuration
type ClientType string

const (
	// IndexClient asks for markup only. Used when fetching the HTML article index.
	IndexClient ClientType = "index"

	// FeedClient asks for syndication formats. Used when reading a generated feed back.
	FeedClient ClientType = "feed"
)

// DefaultTimeout bounds a single request when the caller does not pick one.
const DefaultTimeout = 20 * time.Second

const (
	indexAccept = "text/html,application/xhtml+xml,application/xml"
	feedAccept  = "application/rss+xml,application/xml;q=0.9,*/*;q=0.8"
)

// HTTPClient wraps an http.Client with configuration
type HTTPClient struct {
	client     *http.Client
	clientType ClientType
}

// NewClient creates a new HTTP client with the specified type and DefaultTimeout
func NewClient(clientType ClientType) *HTTPClient {
	return NewClientWithTimeout(clientType, DefaultTimeout)
}

// NewClientWithTimeout creates a new HTTP client with the specified type and request timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewClientWithTimeout(clientType ClientType, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// Follow up to 10 redirects
			if len(via) >= 10 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}

	return &HTTPClient{
		client:     client,
		clientType: clientType,
	}
}

// Do executes an HTTP request with the appropriate headers for the client type
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	c.setHeaders(req)
	return c.client.Do(req)
}

// Get is a convenience method for GET requests bound to ctx
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// setHeaders sets the appropriate headers based on client type
func (c *HTTPClient) setHeaders(req *http.Request) {
	switch c.clientType {
	case IndexClient:
		req.Header.Set("Accept", indexAccept)

	case FeedClient:
		req.Header.Set("Accept", feedAccept)

	default:
		// Default: use Go's default headers
	}
}
