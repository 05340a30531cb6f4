package checker

import (
	"fmt"
	"time"

	"github.com/sentriq/modscan/internal/scan/types"
	"github.com/sentriq/modscan/internal/scan/types/enum"
	"github.com/sentriq/modscan/internal/setup"
	"github.com/sentriq/modscan/internal/setup/config"
	"github.com/sentriq/modscan/pkg/utils"
	"go.uber.org/zap"
)

// BehaviorPatternAnalyzer aggregates a user's message sequence into
// frequency-based pattern detections. Every detector follows the same
// template (ratio or count against a threshold, bounded confidence), so new
// pattern types slot in without touching existing ones.
type BehaviorPatternAnalyzer struct {
	cfg     *config.Config
	lexicon *config.CompiledLexicon
	logger  *zap.Logger
}

// NewBehaviorPatternAnalyzer creates a BehaviorPatternAnalyzer.
func NewBehaviorPatternAnalyzer(app *setup.App, logger *zap.Logger) *BehaviorPatternAnalyzer {
	return &BehaviorPatternAnalyzer{
		cfg:     app.Config,
		lexicon: app.Lexicon,
		logger:  logger.Named("behavior_analyzer"),
	}
}

// Analyze runs every pattern detector over the user-attributed messages.
func (a *BehaviorPatternAnalyzer) Analyze(messages []*types.Message) []*types.BehaviorPattern {
	if len(messages) == 0 {
		return nil
	}

	detectors := []func([]*types.Message) *types.BehaviorPattern{
		a.detectExcessiveProfanity,
		a.detectRapidPosting,
	}

	var patterns []*types.BehaviorPattern

	for _, detect := range detectors {
		if pattern := detect(messages); pattern != nil {
			patterns = append(patterns, pattern)
		}
	}

	return patterns
}

// detectExcessiveProfanity emits a pattern when the ratio of messages
// containing any lexicon word exceeds the configured threshold.
func (a *BehaviorPatternAnalyzer) detectExcessiveProfanity(messages []*types.Message) *types.BehaviorPattern {
	normalizer := utils.NewTextNormalizer()

	var (
		matching int
		examples []string
	)

	for _, msg := range messages {
		count, _ := normalizer.CountContained(msg.Content, a.lexicon.ToxicityKeywords)
		if count == 0 {
			continue
		}

		matching++

		if len(examples) < a.cfg.Behavior.MaxExamples {
			examples = append(examples, msg.Content)
		}
	}

	ratio := float64(matching) / float64(len(messages))
	if ratio <= a.cfg.Behavior.ProfanityRatio {
		return nil
	}

	return &types.BehaviorPattern{
		Pattern:    enum.PatternTypeExcessiveProfanity,
		Confidence: utils.ClampConfidence(ratio),
		Frequency:  matching,
		Examples:   examples,
		Timespan:   windowLabel(messages),
	}
}

// detectRapidPosting slides a fixed window of consecutive messages (in input
// order, not re-sorted) across the list, counting windows whose time span is
// below the configured limit as bursts.
func (a *BehaviorPatternAnalyzer) detectRapidPosting(messages []*types.Message) *types.BehaviorPattern {
	windowSize := a.cfg.Behavior.RapidWindowSize
	if len(messages) < windowSize {
		return nil
	}

	span := time.Duration(a.cfg.Behavior.RapidWindowSeconds) * time.Second
	bursts := 0

	for i := 0; i+windowSize <= len(messages); i++ {
		first := messages[i].Timestamp
		last := messages[i+windowSize-1].Timestamp

		if last.Sub(first) < span {
			bursts++
		}
	}

	if bursts <= a.cfg.Behavior.RapidBurstThreshold {
		return nil
	}

	return &types.BehaviorPattern{
		Pattern:    enum.PatternTypeRapidPosting,
		Confidence: utils.ClampConfidence(float64(bursts) / 10),
		Frequency:  bursts,
		Timespan:   windowLabel(messages),
	}
}

// windowLabel describes the analyzed slice of history.
func windowLabel(messages []*types.Message) string {
	return fmt.Sprintf("last %d messages", len(messages))
}
