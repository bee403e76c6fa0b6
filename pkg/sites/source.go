package sites

// Source describes a site whose article index is scraped into a feed.
type Source struct {
	// IndexURL is the page holding the article listing.
	IndexURL string

	// BaseURL is the origin relative hrefs are resolved against.
	BaseURL string

	// StartMarker and EndMarker bound the part of the index page holding the listing.
	// The fragment starts after the first StartMarker and stops at the next EndMarker
	// (or the end of the page).
	StartMarker string
	EndMarker   string

	// BrokenURLs are canonical URLs the index is known to mangle. Any extracted link
	// starting with one of them is replaced by it verbatim.
	BrokenURLs []string

	// Channel header
	Title       string
	Link        string
	Description string
}

// WithIndexURL returns a copy of s fetching its index from indexURL.
// An empty indexURL leaves s unchanged.
func (s Source) WithIndexURL(indexURL string) Source {
	if indexURL != "" {
		s.IndexURL = indexURL
	}
	return s
}

// WithBaseURL returns a copy of s resolving links against baseURL.
// An empty baseURL leaves s unchanged.
func (s Source) WithBaseURL(baseURL string) Source {
	if baseURL != "" {
		s.BaseURL = baseURL
	}
	return s
}
