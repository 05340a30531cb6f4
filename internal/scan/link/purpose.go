package link

import (
	"net/url"
	"strings"

	"github.com/sentriq/modscan/internal/scan/types"
	"github.com/sentriq/modscan/internal/scan/types/enum"
	"github.com/sentriq/modscan/internal/setup/config"
)

// defaultRelevance is assigned when no purpose rule matches.
const defaultRelevance = 0.3

// PurposeClassifier infers what a URL is for by checking its domain and
// path against the ordered purpose rules. The first matching rule wins.
type PurposeClassifier struct {
	rules []config.PurposeRule
}

// NewPurposeClassifier creates a PurposeClassifier.
func NewPurposeClassifier(lexicon *config.CompiledLexicon) *PurposeClassifier {
	return &PurposeClassifier{rules: lexicon.PurposeRules}
}

// Classify returns the purpose classification for one URL. Unparseable
// input falls through to the default category.
func (c *PurposeClassifier) Classify(rawURL string) *types.LinkPurposeClassification {
	target := strings.ToLower(rawURL)

	if parsed, err := url.Parse(rawURL); err == nil && parsed.Host != "" {
		target = strings.ToLower(parsed.Hostname() + parsed.EscapedPath())
	}

	for _, rule := range c.rules {
		for _, marker := range rule.Markers {
			if !strings.Contains(target, marker) {
				continue
			}

			category, err := enum.LinkCategoryString(rule.Category)
			if err != nil {
				category = enum.LinkCategoryOther
			}

			return &types.LinkPurposeClassification{
				URL:         rawURL,
				Purpose:     rule.Purpose,
				Category:    category,
				Description: rule.Description,
				Relevance:   rule.Relevance,
			}
		}
	}

	return &types.LinkPurposeClassification{
		URL:         rawURL,
		Purpose:     "General link",
		Category:    enum.LinkCategoryOther,
		Description: "No specific purpose identified",
		Relevance:   defaultRelevance,
	}
}
