package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"essay-feed/pkg/parser"
	"essay-feed/pkg/sites"
	"essay-feed/pkg/urls"
)

// mockIndexFetcher is a mock implementation of IndexFetcher for testing
type mockIndexFetcher struct {
	fragment string
	ok       bool
	calls    int
	lastURL  string
}

func (m *mockIndexFetcher) Fetch(ctx context.Context, url string) (string, bool) {
	m.calls++
	m.lastURL = url
	return m.fragment, m.ok
}

var fixedNow = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func testSource() sites.Source {
	s := sites.PaulGraham()
	s.IndexURL = "http://example.com/articles.html"
	s.BaseURL = "http://example.com"
	return s
}

func TestBuilder_Build_TwoArticles(t *testing.T) {
	fetcher := &mockIndexFetcher{fragment: `<a href="/a">First</a><a href="/b">Second</a>`, ok: true}
	clockCalls := 0

	b, err := NewBuilder(Config{
		Source:  testSource(),
		Fetcher: fetcher,
		Clock: func() time.Time {
			clockCalls++
			return fixedNow
		},
	})
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}

	doc := b.Build(context.Background()).String()

	if fetcher.calls != 1 {
		t.Errorf("Expected exactly one fetch, got %d", fetcher.calls)
	}
	if fetcher.lastURL != "http://example.com/articles.html" {
		t.Errorf("Expected fetch of index URL, got '%s'", fetcher.lastURL)
	}
	if clockCalls != 1 {
		t.Errorf("Expected the clock to be read once, got %d", clockCalls)
	}

	feed, err := parser.NewRSSParser().ParseString(doc)
	if err != nil {
		t.Fatalf("Failed to parse built feed: %v", err)
	}
	if len(feed.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(feed.Items))
	}

	want := []struct{ link, title, pubDate string }{
		{"http://example.com/a", "First", "Wed, 14 Oct 2026 00:00:01 GMT"},
		{"http://example.com/b", "Second", "Wed, 14 Oct 2026 00:00:00 GMT"},
	}
	for i, w := range want {
		item := feed.Items[i]
		if item.Link != w.link || item.Title != w.title || item.GUID != w.link {
			t.Errorf("Item %d: unexpected %+v", i, item)
		}
		if !strings.Contains(doc, "<pubDate>"+w.pubDate+"</pubDate>") {
			t.Errorf("Item %d: expected pubDate %q", i, w.pubDate)
		}
	}
}

func TestBuilder_Build_FetchFailureYieldsEmptyFeed(t *testing.T) {
	b, err := NewBuilder(Config{
		Source:  testSource(),
		Fetcher: &mockIndexFetcher{ok: false},
		Clock:   func() time.Time { return fixedNow },
	})
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}

	doc := b.Build(context.Background()).String()

	if strings.Contains(doc, "<item>") {
		t.Errorf("Expected no items in %q", doc)
	}
	feed, err := parser.NewRSSParser().ParseString(doc)
	if err != nil {
		t.Fatalf("Empty feed should parse: %v", err)
	}
	if feed.Title != "Paul Graham: Essays" {
		t.Errorf("Expected channel title, got '%s'", feed.Title)
	}
}

func TestBuilder_Links_UsesExtractor(t *testing.T) {
	extractor, err := urls.NewQueryExtractor("http://example.com")
	if err != nil {
		t.Fatalf("NewQueryExtractor failed: %v", err)
	}

	b, err := NewBuilder(Config{
		Source:    testSource(),
		Fetcher:   &mockIndexFetcher{fragment: `<a href='/x'><b>X</b></a>`, ok: true},
		Extractor: extractor,
	})
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}

	links := b.Links(context.Background())
	if len(links) != 1 || links[0].URL != "http://example.com/x" || links[0].Title != "X" {
		t.Errorf("Unexpected links: %+v", links)
	}
}

func TestNewBuilder_Validation(t *testing.T) {
	if _, err := NewBuilder(Config{}); err == nil {
		t.Error("Expected error for missing index URL, got nil")
	}

	s := testSource()
	s.BaseURL = "not absolute"
	if _, err := NewBuilder(Config{Source: s}); err == nil {
		t.Error("Expected error for relative base URL, got nil")
	}
}

func TestSourcePipelineBuilder_EndToEnd(t *testing.T) {
	page := `<html><body><table><tr><td>menu</td></tr></table><br><table>
<tr><td><a href="/a">First</a></td></tr>
<tr><td><a href="https://sep.turbifycdn.com/ty/cdn/paulgraham/acl1.txt?t=1688221954&">Lisp notes</a></td></tr>
<tr><td><a href="/c">Tom & Jerry</a></td></tr>
</table><br><table><tr><td><a href="/footer">Footer</a></td></tr></table></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	source := testSource().WithIndexURL(server.URL)
	b, err := SourcePipelineBuilder(source, time.Second, urls.ScanKind)
	if err != nil {
		t.Fatalf("SourcePipelineBuilder failed: %v", err)
	}

	doc := b.Build(context.Background()).String()

	if strings.Count(doc, "<item>") != 3 {
		t.Fatalf("Expected 3 items, got %q", doc)
	}
	if strings.Contains(doc, "Footer") {
		t.Error("Expected text after the end marker to be ignored")
	}
	if !strings.Contains(doc, "<link>https://sep.turbifycdn.com/ty/cdn/paulgraham/acl1.txt</link>") {
		t.Error("Expected broken URL to be normalized")
	}
	if !strings.Contains(doc, "<title>Tom &amp; Jerry</title>") {
		t.Error("Expected escaped title")
	}
}

func TestSourcePipelineBuilder_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	b, err := SourcePipelineBuilder(testSource().WithIndexURL(server.URL), time.Second, urls.ScanKind)
	if err != nil {
		t.Fatalf("SourcePipelineBuilder failed: %v", err)
	}

	doc := b.Build(context.Background()).String()
	if strings.Contains(doc, "<item>") {
		t.Error("Expected no items for failed fetch")
	}
	if !strings.HasSuffix(strings.TrimSpace(doc), "</channel></rss>") {
		t.Errorf("Expected complete envelope, got %q", doc)
	}
}

func TestSourcePipelineBuilder_UnknownExtractor(t *testing.T) {
	if _, err := SourcePipelineBuilder(testSource(), time.Second, "regex"); err == nil {
		t.Error("Expected error for unknown extractor, got nil")
	}
}
