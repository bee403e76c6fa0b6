package domain

import "time"

// ArticleLink is a single entry of the scraped article index.
type ArticleLink struct {
	URL   string // Absolute URL, resolved against the source's base origin
	Title string // Anchor text, never empty
}

// TimedArticle is an ArticleLink with its synthetic publication time.
//
// The source index carries no dates, so the time is derived from the article's
// position in the listing. PubDate is the exact value written to the feed and may
// carry an hour field above 23 for very long listings; PublishedAt is the same
// instant as a time.Time and rolls over into the next day instead.
type TimedArticle struct {
	ArticleLink
	Offset      time.Duration
	PublishedAt time.Time
	PubDate     string
}
