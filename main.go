package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"essay-feed/pkg/config"
	"essay-feed/pkg/pipeline"
	"essay-feed/pkg/server"
)

func main() {
	cfg := config.Load()

	flag.StringVar(&cfg.ListenAddr, "addr", cfg.ListenAddr, "Address to serve the feed on")
	flag.StringVar(&cfg.Extractor, "extractor", cfg.Extractor, "Link extractor: scan or query")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	builder, err := pipeline.SourcePipelineBuilder(cfg.Source(), cfg.FetchTimeout, cfg.Extractor)
	if err != nil {
		log.Fatalf("Failed to build pipeline: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.NewHandler(builder),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		log.Printf("Serving feed for %s on %s", cfg.SourceURL, cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
	log.Printf("Server stopped")
}
