package parser

import "time"

// Item is one entry read back from a feed
type Item struct {
	Link      string
	Title     string
	GUID      string
	Published *time.Time // nil when the pubDate could not be parsed
	PubDate   string     // raw pubDate text
}

// Feed is a parsed feed document
type Feed struct {
	Title       string
	Link        string
	Description string
	Items       []Item
}
