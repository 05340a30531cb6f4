// Package link implements the URL-only analysis pipeline: extraction from
// message text, safety classification and purpose classification.
package link

import (
	"sort"
	"strings"

	"github.com/sentriq/modscan/internal/scan/types"
	"github.com/sentriq/modscan/internal/scan/types/enum"
	"github.com/sentriq/modscan/internal/setup"
	"go.uber.org/zap"
)

// Checker bundles the safety and purpose classifiers for window-level
// analysis.
type Checker struct {
	safety  *SafetyClassifier
	purpose *PurposeClassifier
	logger  *zap.Logger
}

// NewChecker creates a Checker.
func NewChecker(app *setup.App, logger *zap.Logger) *Checker {
	return &Checker{
		safety:  NewSafetyClassifier(app.Lexicon, logger),
		purpose: NewPurposeClassifier(app.Lexicon),
		logger:  logger.Named("link_checker"),
	}
}

// Safety exposes the safety classifier for single-URL callers.
func (c *Checker) Safety() *SafetyClassifier {
	return c.safety
}

// Purpose exposes the purpose classifier for single-URL callers.
func (c *Checker) Purpose() *PurposeClassifier {
	return c.purpose
}

// AnalyzeMessageLinks extracts and safety-classifies every URL in the
// window, deduplicated in first-seen order.
func (c *Checker) AnalyzeMessageLinks(messages []*types.Message) []*types.LinkSafetyResult {
	var results []*types.LinkSafetyResult

	seen := make(map[string]struct{})

	for _, msg := range messages {
		for _, rawURL := range ExtractURLs(msg.Content) {
			if _, dup := seen[rawURL]; dup {
				continue
			}

			seen[rawURL] = struct{}{}
			results = append(results, c.safety.Classify(rawURL))
		}
	}

	if len(results) > 0 {
		c.logger.Debug("Analyzed message links",
			zap.Int("messages", len(messages)),
			zap.Int("links", len(results)))
	}

	return results
}

// ClassifyPurposes extracts and purpose-classifies every URL in the window,
// deduplicated in first-seen order.
func (c *Checker) ClassifyPurposes(messages []*types.Message) []*types.LinkPurposeClassification {
	var results []*types.LinkPurposeClassification

	seen := make(map[string]struct{})

	for _, msg := range messages {
		for _, rawURL := range ExtractURLs(msg.Content) {
			if _, dup := seen[rawURL]; dup {
				continue
			}

			seen[rawURL] = struct{}{}
			results = append(results, c.purpose.Classify(rawURL))
		}
	}

	return results
}

// intentRule maps query keywords to the link categories that answer them.
type intentRule struct {
	keywords   []string
	categories []enum.LinkCategory
}

// intentRules is evaluated in order; the first rule with a keyword present
// in the query wins.
var intentRules = []intentRule{
	{
		keywords:   []string{"sign up", "signup", "register", "account", "join"},
		categories: []enum.LinkCategory{enum.LinkCategoryRegistration},
	},
	{
		keywords:   []string{"learn", "tutorial", "guide", "how"},
		categories: []enum.LinkCategory{enum.LinkCategoryLearning, enum.LinkCategoryDocumentation},
	},
	{
		keywords:   []string{"product", "feature", "tool"},
		categories: []enum.LinkCategory{enum.LinkCategoryProduct},
	},
	{
		keywords:   []string{"support", "help", "issue", "problem"},
		categories: []enum.LinkCategory{enum.LinkCategorySupport},
	},
	{
		keywords:   []string{"pricing", "price", "cost", "plan"},
		categories: []enum.LinkCategory{enum.LinkCategoryPricing},
	},
	{
		keywords:   []string{"download", "install"},
		categories: []enum.LinkCategory{enum.LinkCategoryDownload},
	},
	{
		keywords:   []string{"community", "discord", "forum"},
		categories: []enum.LinkCategory{enum.LinkCategoryCommunity},
	},
}

// SmartLinkResponse filters purpose-classified links by the intent inferred
// from the query, sorted by relevance. When no intent keyword matches, or no
// link matches the intent's categories, it falls back to the full list in
// relevance order.
func (c *Checker) SmartLinkResponse(
	links []*types.LinkPurposeClassification, query string,
) []*types.LinkPurposeClassification {
	sorted := make([]*types.LinkPurposeClassification, len(links))
	copy(sorted, links)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Relevance > sorted[j].Relevance
	})

	lowered := strings.ToLower(query)

	for _, rule := range intentRules {
		if !containsAnyKeyword(lowered, rule.keywords) {
			continue
		}

		var filtered []*types.LinkPurposeClassification

		for _, l := range sorted {
			for _, category := range rule.categories {
				if l.Category == category {
					filtered = append(filtered, l)
					break
				}
			}
		}

		if len(filtered) > 0 {
			return filtered
		}

		break
	}

	return sorted
}

func containsAnyKeyword(query string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(query, keyword) {
			return true
		}
	}

	return false
}
