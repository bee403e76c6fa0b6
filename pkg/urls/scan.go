package urls

import (
	"net/url"
	"strings"

	"essay-feed/pkg/domain"
)

const (
	anchorOpen  = `<a href="`
	hrefClose   = `">`
	anchorClose = `</a>`
)

// lineBreaks never appear inside a single anchor match
const lineBreaks = "\n\r\u2028\u2029"

// ScanExtractor reads anchors from hand-written markup by scanning for the literal
// sequences <a href=" ... "> ... </a>. It does not parse HTML: attribute order and
// quoting must match exactly, and an anchor never spans a line break.
type ScanExtractor struct {
	base *url.URL
}

// NewScanExtractor creates a scanner resolving relative links against baseURL
func NewScanExtractor(baseURL string) (*ScanExtractor, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &ScanExtractor{base: base}, nil
}

// Extract implements Extractor. Links are returned in the order they appear.
func (e *ScanExtractor) Extract(fragment string) []domain.ArticleLink {
	links := make([]domain.ArticleLink, 0)

	for _, anchor := range scanAnchors(fragment) {
		href, title, ok := splitAnchor(anchor)
		if !ok {
			continue
		}
		if link, ok := newArticleLink(e.base, href, title); ok {
			links = append(links, link)
		}
	}

	return links
}

// scanAnchors returns every non-overlapping `<a href="...</a>` match, each ending at the
// first closing tag after its opening. Candidates broken by a line break are skipped.
func scanAnchors(s string) []string {
	var anchors []string
	pos := 0

	for pos < len(s) {
		i := strings.Index(s[pos:], anchorOpen)
		if i < 0 {
			break
		}
		start := pos + i
		bodyStart := start + len(anchorOpen)

		j := strings.Index(s[bodyStart:], anchorClose)
		if j < 0 {
			// No later opening can find a closing tag either
			break
		}

		if nl := strings.IndexAny(s[bodyStart:bodyStart+j], lineBreaks); nl >= 0 {
			// Every opening before the break would run into it
			pos = bodyStart + nl + 1
			continue
		}

		end := bodyStart + j + len(anchorClose)
		anchors = append(anchors, s[start:end])
		pos = end
	}

	return anchors
}

// splitAnchor splits a raw match into its href value and inner text
func splitAnchor(anchor string) (href, title string, ok bool) {
	if !strings.HasPrefix(anchor, anchorOpen) || !strings.HasSuffix(anchor, anchorClose) {
		return "", "", false
	}
	body := anchor[len(anchorOpen) : len(anchor)-len(anchorClose)]

	hrefEnd := strings.Index(body, hrefClose)
	if hrefEnd < 0 {
		return "", "", false
	}

	return body[:hrefEnd], body[hrefEnd+len(hrefClose):], true
}
