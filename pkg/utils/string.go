package utils

import (
	"regexp"
	"strings"
)

// MultipleSpaces matches any sequence of whitespace (including newlines).
var MultipleSpaces = regexp.MustCompile(`\s+`)

// CompressAllWhitespace replaces all whitespace sequences (including newlines)
// with a single space. Used when quoting message text as evidence.
func CompressAllWhitespace(s string) string {
	return strings.TrimSpace(MultipleSpaces.ReplaceAllString(s, " "))
}

// TruncateText shortens s to at most maxLen runes, appending "..." when
// anything was cut. Evidence snippets and report lines stay bounded this way.
func TruncateText(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return strings.TrimSpace(string(runes[:maxLen])) + "..."
}
