package pipeline

import (
	"time"

	"essay-feed/pkg/httpclient"
	"essay-feed/pkg/sites"
	"essay-feed/pkg/urls"
)

// SourcePipelineBuilder builds a pipeline for source with a request timeout and
// the named extractor kind (see urls.NewExtractor).
// Pipeline: IndexURL → [IndexFetcher] → [Extractor] → [chrono] → [rss.Serializer]
func SourcePipelineBuilder(source sites.Source, timeout time.Duration, extractorKind string) (*Builder, error) {
	extractor, err := urls.NewExtractor(extractorKind, source.BaseURL)
	if err != nil {
		return nil, err
	}

	client := httpclient.NewClientWithTimeout(httpclient.IndexClient, timeout)

	return NewBuilder(Config{
		Source:    source,
		Fetcher:   urls.NewIndexFetcherWithClient(client, source.StartMarker, source.EndMarker),
		Extractor: extractor,
	})
}
