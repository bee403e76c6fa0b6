package urls

import (
	"fmt"
	"net/url"
	"strings"

	"essay-feed/pkg/domain"
)

// parseBaseURL parses the origin relative hrefs are resolved against
func parseBaseURL(raw string) (*url.URL, error) {
	base, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("base URL %q is not absolute", raw)
	}
	return base, nil
}

// newArticleLink validates one anchor. It reports false when the href is empty or
// does not resolve, or when the title is blank.
func newArticleLink(base *url.URL, href, title string) (domain.ArticleLink, bool) {
	href = strings.TrimSpace(href)
	title = strings.TrimSpace(title)
	if href == "" || title == "" {
		return domain.ArticleLink{}, false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return domain.ArticleLink{}, false
	}

	resolved := strings.TrimSpace(base.ResolveReference(ref).String())
	if resolved == "" {
		return domain.ArticleLink{}, false
	}

	return domain.ArticleLink{URL: resolved, Title: title}, true
}
