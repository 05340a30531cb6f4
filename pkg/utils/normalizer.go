package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TextNormalizer folds case and strips diacritics so lexicon terms match
// obfuscated variants of themselves. Not safe for concurrent use; each
// detector owns its own instance.
type TextNormalizer struct {
	transformer transform.Transformer
}

// NewTextNormalizer creates a new TextNormalizer instance.
func NewTextNormalizer() *TextNormalizer {
	return &TextNormalizer{
		transformer: transform.Chain(
			norm.NFKD,                          // Decompose with compatibility decomposition
			runes.Remove(runes.In(unicode.Mn)), // Remove non-spacing marks
			runes.Map(unicode.ToLower),         // Convert to lowercase before normalization
			norm.NFKC,                          // Normalize with compatibility composition
		),
	}
}

// Normalize cleans up message text for matching. Falls back to simple
// lowercasing if the transform fails.
func (n *TextNormalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	result, _, err := transform.String(n.transformer, s)
	if err != nil || result == "" {
		return strings.ToLower(s)
	}

	return result
}

// Contains reports whether substr occurs in s after both are normalized.
func (n *TextNormalizer) Contains(s, substr string) bool {
	if s == "" || substr == "" {
		return false
	}

	return strings.Contains(n.Normalize(s), n.Normalize(substr))
}

// CountContained returns how many of the given terms occur in s after
// normalization, along with the terms that matched.
func (n *TextNormalizer) CountContained(s string, terms []string) (int, []string) {
	if s == "" || len(terms) == 0 {
		return 0, nil
	}

	normalized := n.Normalize(s)

	var matched []string

	for _, term := range terms {
		if strings.Contains(normalized, n.Normalize(term)) {
			matched = append(matched, term)
		}
	}

	return len(matched), matched
}
