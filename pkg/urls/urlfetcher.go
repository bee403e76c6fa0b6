package urls

import (
	"fmt"

	"essay-feed/pkg/domain"
)

// Extractor turns the listing fragment of an index page into article links.
// Implementations drop malformed entries and never fail the whole fragment.
type Extractor interface {
	Extract(fragment string) []domain.ArticleLink
}

// ExtractorFunc adapts a plain function to the Extractor interface
type ExtractorFunc func(fragment string) []domain.ArticleLink

// Extract calls f(fragment)
func (f ExtractorFunc) Extract(fragment string) []domain.ArticleLink {
	return f(fragment)
}

// Extractor kinds accepted by NewExtractor
const (
	ScanKind  = "scan"
	QueryKind = "query"
)

// NewExtractor creates the extractor of the given kind for baseURL.
// An empty kind selects ScanKind.
func NewExtractor(kind, baseURL string) (Extractor, error) {
	switch kind {
	case "", ScanKind:
		return NewScanExtractor(baseURL)
	case QueryKind:
		return NewQueryExtractor(baseURL)
	default:
		return nil, fmt.Errorf("unknown extractor %q", kind)
	}
}
