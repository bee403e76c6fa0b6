package urls

import "testing"

func TestNormalizer_Normalize(t *testing.T) {
	canonical := "https://sep.turbifycdn.com/ty/cdn/paulgraham/acl1.txt"
	n := NewNormalizer([]string{canonical, ""})

	tests := []struct {
		in   string
		want string
	}{
		{canonical, canonical},
		{canonical + "?t=1688221954&amp;", canonical},
		{canonical + "garbage", canonical},
		{"http://paulgraham.com/greatwork.html", "http://paulgraham.com/greatwork.html"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := n.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizer_Nil(t *testing.T) {
	var n *Normalizer
	if got := n.Normalize("http://example.com"); got != "http://example.com" {
		t.Errorf("Expected passthrough, got %q", got)
	}
}
