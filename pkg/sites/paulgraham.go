package sites

// paulGrahamMarker separates the navigation table from the essay table on
// paulgraham.com/articles.html. The listing sits between its first and second occurrence.
const paulGrahamMarker = "</table><br><table"

// PaulGraham returns the source profile for paulgraham.com essays.
func PaulGraham() Source {
	return Source{
		IndexURL:    "http://paulgraham.com/articles.html",
		BaseURL:     "http://paulgraham.com",
		StartMarker: paulGrahamMarker,
		EndMarker:   paulGrahamMarker,
		// The index links these text files with cache-busting query strings that
		// arrive truncated or entity-mangled.
		BrokenURLs: []string{
			"https://sep.turbifycdn.com/ty/cdn/paulgraham/acl1.txt",
			"https://sep.turbifycdn.com/ty/cdn/paulgraham/acl2.txt",
		},
		Title:       "Paul Graham: Essays",
		Link:        "http://www.paulgraham.com/",
		Description: "Unauthorized scraped RSS feed",
	}
}
