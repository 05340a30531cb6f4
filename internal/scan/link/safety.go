package link

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sentriq/modscan/internal/scan/types"
	"github.com/sentriq/modscan/internal/scan/types/enum"
	"github.com/sentriq/modscan/internal/setup/config"
	"go.uber.org/zap"
)

// SafetyClassifier classifies a single URL against the domain and pattern
// tables. Classification is a precedence chain: each branch returns
// immediately, so earlier tables win over later ones.
type SafetyClassifier struct {
	lexicon *config.CompiledLexicon
	logger  *zap.Logger
}

// NewSafetyClassifier creates a SafetyClassifier.
func NewSafetyClassifier(lexicon *config.CompiledLexicon, logger *zap.Logger) *SafetyClassifier {
	return &SafetyClassifier{
		lexicon: lexicon,
		logger:  logger.Named("link_safety"),
	}
}

// Classify returns the safety verdict for one URL. Malformed input is
// recovered locally as a low-confidence suspicious result, never an error.
func (c *SafetyClassifier) Classify(rawURL string) *types.LinkSafetyResult {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return &types.LinkSafetyResult{
			URL:        rawURL,
			Status:     enum.LinkStatusSuspicious,
			Reasons:    []string{"invalid URL format"},
			Confidence: 0.3,
		}
	}

	host := strings.ToLower(parsed.Hostname())
	path := strings.ToLower(parsed.EscapedPath())

	// Known malicious hosts outrank everything else.
	for _, domain := range c.lexicon.MaliciousDomains {
		if strings.Contains(host, domain) {
			return c.result(rawURL, enum.LinkStatusDangerous, 0.95,
				fmt.Sprintf("Domain matches known malicious host %s", domain))
		}
	}

	for _, domain := range c.lexicon.SafeDomains {
		if strings.Contains(host, domain) {
			return c.result(rawURL, enum.LinkStatusSafe, 0.9,
				fmt.Sprintf("Domain %s is a known safe host", domain))
		}
	}

	for _, re := range c.lexicon.Suspicious {
		if re.MatchString(host) {
			return c.result(rawURL, enum.LinkStatusSuspicious, 0.7,
				fmt.Sprintf("Domain matches suspicious pattern %s", re.String()))
		}
	}

	// Checked after the pattern rules so a legitimate invite host can
	// upgrade a result the impersonation patterns did not claim.
	for _, invite := range c.lexicon.InviteHosts {
		if host == invite {
			return c.result(rawURL, enum.LinkStatusSafe, 0.85, "Official Discord invite link")
		}
	}

	if strings.Contains(path, "..") || strings.Contains(path, "%") {
		return c.result(rawURL, enum.LinkStatusSuspicious, 0.6,
			"Path contains traversal markers or percent-encoding")
	}

	for _, ext := range c.lexicon.ExecutableExtensions {
		if strings.HasSuffix(path, ext) {
			return c.result(rawURL, enum.LinkStatusSuspicious, 0.5,
				fmt.Sprintf("Path ends in executable or archive extension %s", ext))
		}
	}

	return c.result(rawURL, enum.LinkStatusSafe, 0.8, "no obvious security concerns detected")
}

// result builds a verdict with a single deciding reason.
func (c *SafetyClassifier) result(
	rawURL string, status enum.LinkStatus, confidence float64, reason string,
) *types.LinkSafetyResult {
	c.logger.Debug("Classified link",
		zap.String("url", rawURL),
		zap.Stringer("status", status),
		zap.Float64("confidence", confidence))

	return &types.LinkSafetyResult{
		URL:        rawURL,
		Status:     status,
		Reasons:    []string{reason},
		Confidence: confidence,
	}
}
