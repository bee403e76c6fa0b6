package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"essay-feed/pkg/config"
	"essay-feed/pkg/parser"
	"essay-feed/pkg/pipeline"
)

func main() {
	var (
		feedURL  = flag.String("url", "", "Read a served feed from this URL instead of building one locally")
		maxItems = flag.Int("max", 10, "Max items to print (<=0 means all)")
	)
	flag.Parse()

	ctx := context.Background()
	rssParser := parser.NewRSSParser()

	var (
		feed *parser.Feed
		err  error
	)
	start := time.Now()

	if *feedURL != "" {
		feed, err = rssParser.ParseFromURL(ctx, *feedURL)
	} else {
		feed, err = buildLocal(ctx, rssParser)
	}
	if err != nil {
		log.Fatalf("Feed check failed: %v", err)
	}

	shown := len(feed.Items)
	if *maxItems > 0 && shown > *maxItems {
		shown = *maxItems
	}

	fmt.Printf("%s (%s)\n", feed.Title, feed.Link)
	fmt.Printf("Found %d items in %s. Showing first %d:\n\n", len(feed.Items), time.Since(start).Round(time.Millisecond), shown)

	for i := 0; i < shown; i++ {
		item := feed.Items[i]
		fmt.Printf("Item %d:\n", i+1)
		fmt.Printf("  Title: %s\n", item.Title)
		fmt.Printf("  URL: %s\n", item.Link)
		fmt.Printf("  Published: %s\n", item.PubDate)
		if item.GUID != item.Link {
			fmt.Printf("  WARNING: guid %s differs from link\n", item.GUID)
		}
		fmt.Println()
	}
}

// buildLocal runs the pipeline from configuration and parses the result
func buildLocal(ctx context.Context, rssParser *parser.RSSParser) (*parser.Feed, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	builder, err := pipeline.SourcePipelineBuilder(cfg.Source(), cfg.FetchTimeout, cfg.Extractor)
	if err != nil {
		return nil, fmt.Errorf("failed to build pipeline: %w", err)
	}

	return rssParser.ParseString(builder.Build(ctx).String())
}
