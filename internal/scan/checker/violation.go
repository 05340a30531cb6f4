package checker

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sentriq/modscan/internal/scan/types"
	"github.com/sentriq/modscan/internal/scan/types/enum"
	"github.com/sentriq/modscan/internal/setup"
	"github.com/sentriq/modscan/internal/setup/config"
	"github.com/sentriq/modscan/pkg/utils"
	"go.uber.org/zap"
)

// ViolationDetector scans one user's messages against the lexicon and
// pattern tables and emits zero or more violations per message. The three
// checks (toxicity, harassment, spam) are independent, so a single message
// can yield up to three violations.
type ViolationDetector struct {
	cfg     *config.Config
	lexicon *config.CompiledLexicon
	logger  *zap.Logger
}

// NewViolationDetector creates a ViolationDetector.
func NewViolationDetector(app *setup.App, logger *zap.Logger) *ViolationDetector {
	return &ViolationDetector{
		cfg:     app.Config,
		lexicon: app.Lexicon,
		logger:  logger.Named("violation_detector"),
	}
}

// Detect runs all checks over the given user-attributed messages.
// Violations are created fresh on every call and never mutated afterwards.
func (d *ViolationDetector) Detect(messages []*types.Message) []*types.Violation {
	// The normalizer transformer is stateful, so each call owns one.
	normalizer := utils.NewTextNormalizer()

	var violations []*types.Violation

	for _, msg := range messages {
		if v := d.checkToxicity(normalizer, msg); v != nil {
			violations = append(violations, v)
		}

		if v := d.checkHarassment(normalizer, msg); v != nil {
			violations = append(violations, v)
		}

		if v := d.checkSpam(msg); v != nil {
			violations = append(violations, v)
		}
	}

	if len(violations) > 0 {
		d.logger.Debug("Detected violations",
			zap.Int("messages", len(messages)),
			zap.Int("violations", len(violations)))
	}

	return violations
}

// checkToxicity scores a message against the toxicity keyword lexicon with
// harassment matches weighted double, normalized by the table sizes plus one
// per matched pattern.
func (d *ViolationDetector) checkToxicity(normalizer *utils.TextNormalizer, msg *types.Message) *types.Violation {
	keywordHits, matched := normalizer.CountContained(msg.Content, d.lexicon.ToxicityKeywords)

	normalized := normalizer.Normalize(msg.Content)

	patternHits := 0

	for _, re := range d.lexicon.Harassment {
		if re.MatchString(normalized) {
			patternHits++
		}
	}

	denominator := len(d.lexicon.ToxicityKeywords) + len(d.lexicon.Harassment) + patternHits
	if denominator == 0 {
		return nil
	}

	score := float64(keywordHits+2*patternHits) / float64(denominator)
	if score <= d.cfg.Toxicity.FlagThreshold {
		return nil
	}

	severity := enum.SeverityMedium
	if score > d.cfg.Toxicity.HighSeverityThreshold {
		severity = enum.SeverityHigh
	}

	return d.newViolation(msg, enum.ViolationTypeToxicity, severity,
		fmt.Sprintf("Toxic language detected (score %.2f)", score), matched)
}

// checkHarassment flags a message when any harassment phrasing matches,
// independent of the toxicity score.
func (d *ViolationDetector) checkHarassment(normalizer *utils.TextNormalizer, msg *types.Message) *types.Violation {
	normalized := normalizer.Normalize(msg.Content)

	for _, re := range d.lexicon.Harassment {
		if phrase := re.FindString(normalized); phrase != "" {
			return d.newViolation(msg, enum.ViolationTypeHarassment, enum.SeverityHigh,
				"Harassment phrasing directed at another member", []string{phrase})
		}
	}

	return nil
}

// checkSpam flags repeated-character runs and call-to-action or money-scam
// phrasing.
func (d *ViolationDetector) checkSpam(msg *types.Message) *types.Violation {
	if hasCharFlood(msg.Content) {
		return d.newViolation(msg, enum.ViolationTypeSpam, enum.SeverityMedium,
			"Repeated-character flooding", nil)
	}

	for _, re := range d.lexicon.Spam {
		if phrase := re.FindString(msg.Content); phrase != "" {
			return d.newViolation(msg, enum.ViolationTypeSpam, enum.SeverityMedium,
				"Spam phrasing detected", []string{phrase})
		}
	}

	return nil
}

// newViolation builds a violation tied to one message, quoting a bounded
// snippet of the message as leading evidence.
func (d *ViolationDetector) newViolation(
	msg *types.Message, violationType enum.ViolationType, severity enum.Severity,
	description string, evidence []string,
) *types.Violation {
	snippet := utils.TruncateText(utils.CompressAllWhitespace(msg.Content), 100)

	return &types.Violation{
		ID:          uuid.New().String(),
		Type:        violationType,
		Severity:    severity,
		Description: description,
		Evidence:    append([]string{snippet}, evidence...),
		Timestamp:   msg.Timestamp,
		Channel:     msg.Channel,
		Resolved:    false,
	}
}

// charFloodThreshold is the run length at which repeated characters count
// as flooding.
const charFloodThreshold = 7

// hasCharFlood reports runs of identical characters. RE2 has no
// backreferences, so this is a linear scan.
func hasCharFlood(text string) bool {
	count := 1
	prev := rune(-1)

	for _, r := range text {
		if r == prev {
			count++
			if count >= charFloodThreshold {
				return true
			}
		} else {
			count = 1
			prev = r
		}
	}

	return false
}
