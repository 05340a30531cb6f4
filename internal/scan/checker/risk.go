package checker

import (
	"github.com/sentriq/modscan/internal/scan/types"
	"github.com/sentriq/modscan/internal/scan/types/enum"
	"github.com/sentriq/modscan/internal/setup/config"
	"github.com/sentriq/modscan/pkg/utils"
)

// RiskScorer deterministically combines violations, behavior patterns and
// activity signals into a bounded score.
type RiskScorer struct {
	cfg *config.Risk
}

// NewRiskScorer creates a RiskScorer.
func NewRiskScorer(cfg *config.Config) *RiskScorer {
	return &RiskScorer{cfg: &cfg.Risk}
}

// Score computes the risk score for one user, clamped to [0, 100].
func (s *RiskScorer) Score(
	violations []*types.Violation, patterns []*types.BehaviorPattern, activity *types.ActivitySummary,
) int {
	score := 0.0

	for _, violation := range violations {
		score += float64(s.severityWeight(violation.Severity))
	}

	for _, pattern := range patterns {
		score += pattern.Confidence * s.cfg.PatternWeight
	}

	if activity != nil {
		if activity.MessagesLast24h > s.cfg.HighVolumeThreshold {
			score += float64(s.cfg.HighVolumeBonus)
		}

		if activity.AverageMessageLength < s.cfg.ShortMessageLength {
			score += float64(s.cfg.ShortMessageBonus)
		}

		if activity.ReactionRatio < s.cfg.LowReactionRatio {
			score += float64(s.cfg.LowReactionBonus)
		}
	}

	return utils.ClampScore(int(score))
}

// severityWeight maps a violation severity to its score contribution.
func (s *RiskScorer) severityWeight(severity enum.Severity) int {
	switch severity {
	case enum.SeverityCritical:
		return s.cfg.CriticalWeight
	case enum.SeverityHigh:
		return s.cfg.HighWeight
	case enum.SeverityMedium:
		return s.cfg.MediumWeight
	case enum.SeverityLow:
		return s.cfg.LowWeight
	default:
		return 0
	}
}
