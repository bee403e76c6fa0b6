package parser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"essay-feed/pkg/httpclient"

	"github.com/mmcdole/gofeed"
)

// RSSParser handles RSS/Atom feed parsing operations
type RSSParser struct {
	feedParser *gofeed.Parser
	client     *httpclient.HTTPClient
}

// NewRSSParser creates a new RSS parser
func NewRSSParser() *RSSParser {
	return &RSSParser{
		feedParser: gofeed.NewParser(),
		client:     httpclient.NewClient(httpclient.FeedClient),
	}
}

// ParseString parses a feed document held in memory
func (p *RSSParser) ParseString(doc string) (*Feed, error) {
	return p.Parse(strings.NewReader(doc))
}

// Parse parses a feed document from r
func (p *RSSParser) Parse(r io.Reader) (*Feed, error) {
	feed, err := p.feedParser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}
	return convertFeed(feed), nil
}

// ParseFromURL fetches and parses a feed from the given URL
func (p *RSSParser) ParseFromURL(ctx context.Context, feedURL string) (*Feed, error) {
	resp, err := p.client.Get(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return p.Parse(resp.Body)
}

// convertFeed keeps the parts of a gofeed.Feed a generated feed is checked against
func convertFeed(feed *gofeed.Feed) *Feed {
	out := &Feed{
		Title:       feed.Title,
		Link:        feed.Link,
		Description: feed.Description,
		Items:       make([]Item, 0, len(feed.Items)),
	}

	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		out.Items = append(out.Items, Item{
			Link:      item.Link,
			Title:     item.Title,
			GUID:      item.GUID,
			Published: item.PublishedParsed,
			PubDate:   item.Published,
		})
	}

	return out
}
