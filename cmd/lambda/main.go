// Lambda entry point serving the feed behind API Gateway.
//
// Environment:
//   - SOURCE_URL:    index page to scrape (default http://paulgraham.com/articles.html)
//   - BASE_URL:      origin relative links resolve against (default http://paulgraham.com)
//   - FETCH_TIMEOUT: upstream request timeout (default 20s)
//   - EXTRACTOR:     scan or query (default scan)
package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"essay-feed/pkg/config"
	"essay-feed/pkg/pipeline"
	"essay-feed/pkg/server"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	builder, err := pipeline.SourcePipelineBuilder(cfg.Source(), cfg.FetchTimeout, cfg.Extractor)
	if err != nil {
		log.Fatalf("Failed to build pipeline: %v", err)
	}

	lambda.Start(server.LambdaHandler(builder))
}
