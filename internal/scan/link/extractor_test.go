package link_test

import (
	"testing"

	"github.com/sentriq/modscan/internal/scan/link"
	"github.com/stretchr/testify/assert"
)

func TestExtractURLs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "plain link",
			content: "see https://example.com/docs for details",
			want:    []string{"https://example.com/docs"},
		},
		{
			name:    "trailing punctuation trimmed",
			content: "is it here (https://example.com/docs)? yes!",
			want:    []string{"https://example.com/docs"},
		},
		{
			name:    "multiple links keep order",
			content: "http://a.example.com first, then https://b.example.com/x.",
			want:    []string{"http://a.example.com", "https://b.example.com/x"},
		},
		{
			name:    "no links",
			content: "nothing to see here, not even example.com",
			want:    nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, link.ExtractURLs(tt.content))
		})
	}
}
