package urls

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"essay-feed/pkg/httpclient"
)

// IndexFetcher downloads an article index page and cuts out the part holding the listing
type IndexFetcher struct {
	client      *httpclient.HTTPClient
	startMarker string
	endMarker   string
}

// NewIndexFetcher creates an index fetcher using the IndexClient profile
func NewIndexFetcher(startMarker, endMarker string) *IndexFetcher {
	return NewIndexFetcherWithClient(httpclient.NewClient(httpclient.IndexClient), startMarker, endMarker)
}

// NewIndexFetcherWithClient creates an index fetcher with a specific client
func NewIndexFetcherWithClient(client *httpclient.HTTPClient, startMarker, endMarker string) *IndexFetcher {
	return &IndexFetcher{
		client:      client,
		startMarker: startMarker,
		endMarker:   endMarker,
	}
}

// Fetch issues one GET for url and returns the listing fragment.
// ok is false when the page could not be fetched; the caller should then publish an
// empty listing. A page missing the start marker yields an empty fragment with ok true.
func (f *IndexFetcher) Fetch(ctx context.Context, url string) (fragment string, ok bool) {
	page, err := f.fetchHTML(ctx, url)
	if err != nil {
		log.Printf("IndexFetcher: no content from %s: %v", url, err)
		return "", false
	}

	fragment, found := Between(page, f.startMarker, f.endMarker)
	if !found {
		log.Printf("IndexFetcher: start marker %q not found in %s", f.startMarker, url)
	}
	return fragment, true
}

// fetchHTML fetches the page body, failing on any non-2xx status
func (f *IndexFetcher) fetchHTML(ctx context.Context, url string) (string, error) {
	resp, err := f.client.Get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}

// Between returns the text after the first start marker and before the next end
// marker. Without an end marker the text runs to the end of page. An empty start
// marker selects the whole page. found is false when the start marker is absent.
func Between(page, start, end string) (fragment string, found bool) {
	rest := page
	if start != "" {
		i := strings.Index(page, start)
		if i < 0 {
			return "", false
		}
		rest = page[i+len(start):]
	}

	if end != "" {
		if j := strings.Index(rest, end); j >= 0 {
			rest = rest[:j]
		}
	}

	return rest, true
}
