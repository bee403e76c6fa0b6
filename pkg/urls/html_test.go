package urls

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const testMarker = "</table><br><table"

func TestIndexFetcher_Fetch(t *testing.T) {
	page := `<html><table><tr><td>nav</td></tr></table><br><table>` +
		`<tr><td><a href="/a">First</a></td></tr>` +
		`</table><br><table><tr><td><a href="/footer">Footer</a></td></tr></table></html>`

	var accept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(page))
	}))
	defer server.Close()

	fetcher := NewIndexFetcher(testMarker, testMarker)
	fragment, ok := fetcher.Fetch(context.Background(), server.URL)
	if !ok {
		t.Fatal("Expected content, got none")
	}

	if fragment != `<tr><td><a href="/a">First</a></td></tr>` {
		t.Errorf("Unexpected fragment: %q", fragment)
	}
	if accept != "text/html,application/xhtml+xml,application/xml" {
		t.Errorf("Unexpected Accept header: %q", accept)
	}
}

func TestIndexFetcher_Fetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(testMarker + `<a href="/a">A</a>`))
	}))
	defer server.Close()

	fragment, ok := NewIndexFetcher(testMarker, testMarker).Fetch(context.Background(), server.URL)
	if ok {
		t.Error("Expected no content for 500 status")
	}
	if fragment != "" {
		t.Errorf("Expected empty fragment, got %q", fragment)
	}
}

func TestIndexFetcher_Fetch_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	if _, ok := NewIndexFetcher(testMarker, testMarker).Fetch(context.Background(), url); ok {
		t.Error("Expected no content for closed server")
	}
}

func TestIndexFetcher_Fetch_MissingMarker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><a href="/a">A</a></html>`))
	}))
	defer server.Close()

	fragment, ok := NewIndexFetcher(testMarker, testMarker).Fetch(context.Background(), server.URL)
	if !ok {
		t.Error("Expected the fetch itself to succeed")
	}
	if fragment != "" {
		t.Errorf("Expected empty fragment, got %q", fragment)
	}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name  string
		page  string
		start string
		end   string
		want  string
		found bool
	}{
		{"both markers", "a|b|c", "|", "|", "b", true},
		{"no end marker", "a|bc", "|", "|", "bc", true},
		{"no start marker", "abc", "|", "|", "", false},
		{"empty start", "abc", "", "", "abc", true},
		{"different markers", "x<start>y<end>z", "<start>", "<end>", "y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Between(tt.page, tt.start, tt.end)
			if got != tt.want || found != tt.found {
				t.Errorf("Between(%q, %q, %q) = %q, %v; want %q, %v", tt.page, tt.start, tt.end, got, found, tt.want, tt.found)
			}
		})
	}
}
