package rss

import "strings"

// xmlEscaper replaces the five XML metacharacters. Input is assumed to carry no
// entities already, so "&amp;" becomes "&amp;amp;".
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

// Escape makes s safe for XML element content and attribute values
func Escape(s string) string {
	return xmlEscaper.Replace(s)
}
