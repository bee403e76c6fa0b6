package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/url"
	"os"
	"time"

	"essay-feed/pkg/httpclient"
	"essay-feed/pkg/sites"
	"essay-feed/pkg/urls"

	"github.com/joho/godotenv"
)

// Config holds the settings of a feed deployment
type Config struct {
	ListenAddr   string
	SourceURL    string
	BaseURL      string
	FetchTimeout time.Duration
	Extractor    string
}

var (
	ErrInvalidSourceURL = errors.New("source URL must be absolute")
	ErrInvalidBaseURL   = errors.New("base URL must be absolute")
	ErrInvalidTimeout   = errors.New("fetch timeout must be positive")
	ErrUnknownExtractor = errors.New("unknown extractor")
)

// Load reads envFiles (default ".env") into the environment without overriding
// variables already set, then builds a Config from the environment.
// Missing env files are not an error.
func Load(envFiles ...string) Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("config: ignoring %s: %v", f, err)
		}
	}

	site := sites.PaulGraham()
	return Config{
		ListenAddr:   getenv("LISTEN_ADDR", ":8080"),
		SourceURL:    getenv("SOURCE_URL", site.IndexURL),
		BaseURL:      getenv("BASE_URL", site.BaseURL),
		FetchTimeout: parseDurationEnv("FETCH_TIMEOUT", httpclient.DefaultTimeout),
		Extractor:    getenv("EXTRACTOR", urls.ScanKind),
	}
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if !isAbsolute(c.SourceURL) {
		return fmt.Errorf("%w: %q", ErrInvalidSourceURL, c.SourceURL)
	}
	if !isAbsolute(c.BaseURL) {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.FetchTimeout)
	}
	switch c.Extractor {
	case urls.ScanKind, urls.QueryKind:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownExtractor, c.Extractor)
	}
	return nil
}

// Source returns the paulgraham.com profile with the configured URLs applied
func (c Config) Source() sites.Source {
	return sites.PaulGraham().WithIndexURL(c.SourceURL).WithBaseURL(c.BaseURL)
}

func isAbsolute(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("config: invalid %s=%q, using %s", key, v, def)
	}
	return def
}
