// Package chrono assigns synthetic publication times to an undated article listing.
//
// Every article of one build shares the calendar day of the generation instant. The
// time of day is the article's distance from the end of the listing in seconds, so the
// first (most recent) article gets the latest time and the last one gets 00:00:00.
package chrono

import (
	"fmt"
	"time"

	"essay-feed/pkg/domain"
)

// Clock returns the generation instant. It is called once per feed build.
type Clock func() time.Time

// dateLayout is the RFC 822 day part written in front of every pubDate
const dateLayout = "Mon, 02 Jan 2006"

// Offset returns max(0, count-index-1) seconds
func Offset(index, count int) time.Duration {
	n := count - index - 1
	if n < 0 {
		n = 0
	}
	return time.Duration(n) * time.Second
}

// FormatPubDate renders day's UTC date followed by offset as HH:MM:SS GMT.
// Hours are not wrapped at 24.
func FormatPubDate(day time.Time, offset time.Duration) string {
	secs := int64(offset / time.Second)
	if secs < 0 {
		secs = 0
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%s %02d:%02d:%02d GMT", day.UTC().Format(dateLayout), h, m, s)
}

// StartOfDay truncates t to midnight UTC
func StartOfDay(t time.Time) time.Time {
	y, mo, d := t.UTC().Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// Assign stamps links in listing order with times anchored on now
func Assign(links []domain.ArticleLink, now time.Time) []domain.TimedArticle {
	day := StartOfDay(now)
	timed := make([]domain.TimedArticle, len(links))

	for i, link := range links {
		offset := Offset(i, len(links))
		timed[i] = domain.TimedArticle{
			ArticleLink: link,
			Offset:      offset,
			PublishedAt: day.Add(offset),
			PubDate:     FormatPubDate(day, offset),
		}
	}

	return timed
}
