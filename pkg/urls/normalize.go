package urls

import "strings"

// Normalizer rewrites links the source is known to corrupt
type Normalizer struct {
	canonical []string
}

// NewNormalizer creates a normalizer for the given canonical URLs
func NewNormalizer(canonical []string) *Normalizer {
	kept := make([]string, 0, len(canonical))
	for _, c := range canonical {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return &Normalizer{canonical: kept}
}

// Normalize returns the canonical URL u starts with, or u unchanged.
// Anything after a canonical prefix is discarded.
func (n *Normalizer) Normalize(u string) string {
	if n == nil {
		return u
	}
	for _, c := range n.canonical {
		if strings.HasPrefix(u, c) {
			return c
		}
	}
	return u
}
