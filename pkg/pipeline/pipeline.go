package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"essay-feed/pkg/chrono"
	"essay-feed/pkg/domain"
	"essay-feed/pkg/rss"
	"essay-feed/pkg/sites"
	"essay-feed/pkg/urls"
)

// IndexFetcher retrieves the listing fragment of an index page.
// ok is false when nothing could be fetched.
type IndexFetcher interface {
	Fetch(ctx context.Context, url string) (fragment string, ok bool)
}

// Config wires a Builder. Zero fields get defaults derived from Source.
type Config struct {
	Source    sites.Source
	Fetcher   IndexFetcher   // defaults to urls.IndexFetcher with Source's markers
	Extractor urls.Extractor // defaults to urls.ScanExtractor on Source.BaseURL
	Clock     chrono.Clock   // defaults to time.Now
}

// Builder turns one index page into one feed document:
// fetch → extract → stamp times → normalize/escape → render.
// It keeps no state between builds and is safe for concurrent use.
type Builder struct {
	source     sites.Source
	fetcher    IndexFetcher
	extractor  urls.Extractor
	clock      chrono.Clock
	serializer *rss.Serializer
}

// NewBuilder creates a builder from cfg
func NewBuilder(cfg Config) (*Builder, error) {
	if cfg.Source.IndexURL == "" {
		return nil, fmt.Errorf("source index URL is required")
	}

	b := &Builder{
		source:    cfg.Source,
		fetcher:   cfg.Fetcher,
		extractor: cfg.Extractor,
		clock:     cfg.Clock,
	}

	if b.fetcher == nil {
		b.fetcher = urls.NewIndexFetcher(cfg.Source.StartMarker, cfg.Source.EndMarker)
	}
	if b.extractor == nil {
		extractor, err := urls.NewScanExtractor(cfg.Source.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create extractor: %w", err)
		}
		b.extractor = extractor
	}
	if b.clock == nil {
		b.clock = time.Now
	}

	channel := rss.Channel{
		Title:       cfg.Source.Title,
		Link:        cfg.Source.Link,
		Description: cfg.Source.Description,
	}
	b.serializer = rss.NewSerializer(channel, urls.NewNormalizer(cfg.Source.BrokenURLs))

	return b, nil
}

// Build fetches the index once and renders the feed. A failed fetch yields a valid
// feed without items; Build never fails.
func (b *Builder) Build(ctx context.Context) rss.Document {
	generatedAt := b.clock()

	links := b.Links(ctx)
	items := chrono.Assign(links, generatedAt)

	log.Printf("Builder: rendered %d items from %s", len(items), b.source.IndexURL)
	return b.serializer.Render(items)
}

// Links fetches the index and extracts its article links in listing order
func (b *Builder) Links(ctx context.Context) []domain.ArticleLink {
	fragment, ok := b.fetcher.Fetch(ctx, b.source.IndexURL)
	if !ok {
		return []domain.ArticleLink{}
	}
	return b.extractor.Extract(fragment)
}
