// Package rss renders article listings as RSS 2.0 documents.
package rss

import (
	"strings"

	"essay-feed/pkg/domain"
)

// ContentType is the media type of a rendered Document
const ContentType = "application/rss+xml; charset=UTF-8"

// contentNamespace is the RSS content module declared on the root element
const contentNamespace = "http://purl.org/rss/1.0/modules/content/"

// Channel is the fixed header of a feed
type Channel struct {
	Title       string
	Link        string
	Description string
}

// LinkNormalizer rewrites an item link before it is written
type LinkNormalizer interface {
	Normalize(link string) string
}

// Document is a serialized feed
type Document string

// String returns the document text
func (d Document) String() string {
	return string(d)
}

// Serializer renders items under a fixed channel header
type Serializer struct {
	channel    Channel
	normalizer LinkNormalizer
}

// NewSerializer creates a serializer. normalizer may be nil.
func NewSerializer(channel Channel, normalizer LinkNormalizer) *Serializer {
	return &Serializer{
		channel:    channel,
		normalizer: normalizer,
	}
}

// Render writes one <item> per article, in order. The result has no leading whitespace.
func (s *Serializer) Render(items []domain.TimedArticle) Document {
	var b strings.Builder

	b.WriteString(`<rss version="2.0" xmlns:content="` + contentNamespace + `"><channel>`)
	b.WriteString("\n\t<title>" + Escape(s.channel.Title) + "</title>")
	b.WriteString("\n\t<link>" + Escape(s.channel.Link) + "</link>")
	b.WriteString("\n\t<description>" + Escape(s.channel.Description) + "</description>")

	for _, item := range items {
		link := Escape(s.normalize(item.URL))
		b.WriteString("\n\t<item>")
		b.WriteString("\n\t\t<link>" + link + "</link>")
		b.WriteString("\n\t\t<title>" + Escape(item.Title) + "</title>")
		b.WriteString("\n\t\t<pubDate>" + item.PubDate + "</pubDate>")
		b.WriteString("\n\t\t<guid>" + link + "</guid>")
		b.WriteString("\n\t</item>")
	}

	b.WriteString("\n</channel></rss>\n")

	return Document(strings.TrimLeft(b.String(), " \t\r\n"))
}

func (s *Serializer) normalize(link string) string {
	if s.normalizer == nil {
		return link
	}
	return s.normalizer.Normalize(link)
}
