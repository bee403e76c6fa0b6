package urls

import (
	"net/url"
	"strings"

	"essay-feed/pkg/domain"

	"github.com/PuerkitoBio/goquery"
)

// QueryExtractor reads anchors with a real HTML parser instead of literal scanning.
// It accepts any attribute quoting and nested inline markup, and applies the same
// validation rules as ScanExtractor: blank hrefs, unresolvable hrefs and blank titles
// are dropped.
type QueryExtractor struct {
	base *url.URL
}

// NewQueryExtractor creates a goquery based extractor resolving links against baseURL
func NewQueryExtractor(baseURL string) (*QueryExtractor, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &QueryExtractor{base: base}, nil
}

// Extract implements Extractor
func (e *QueryExtractor) Extract(fragment string) []domain.ArticleLink {
	links := make([]domain.ArticleLink, 0)
	if strings.TrimSpace(fragment) == "" {
		return links
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return links
	}

	doc.Find("a[href]").Each(func(i int, a *goquery.Selection) {
		href, exists := a.Attr("href")
		if !exists {
			return
		}
		if link, ok := newArticleLink(e.base, href, a.Text()); ok {
			links = append(links, link)
		}
	})

	return links
}
