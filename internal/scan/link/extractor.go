package link

import (
	"regexp"
	"strings"
)

// urlPattern matches http/https tokens in message text. Compiled once at
// package init and reused for every call.
var urlPattern = regexp.MustCompile(`https?://[^\s<>"']+`)

// trailingPunctuation holds characters trimmed from the end of extracted
// URLs; sentence punctuation routinely sticks to pasted links.
const trailingPunctuation = `.,!?;:)]}'"`

// ExtractURLs scans message content for http(s) tokens, trimming trailing
// punctuation from each match.
func ExtractURLs(content string) []string {
	matches := urlPattern.FindAllString(content, -1)
	if len(matches) == 0 {
		return nil
	}

	urls := make([]string, 0, len(matches))

	for _, match := range matches {
		trimmed := strings.TrimRight(match, trailingPunctuation)
		if trimmed != "" {
			urls = append(urls, trimmed)
		}
	}

	return urls
}
