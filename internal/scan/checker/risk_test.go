package checker_test

import (
	"testing"

	"github.com/sentriq/modscan/internal/scan/checker"
	"github.com/sentriq/modscan/internal/scan/types"
	"github.com/sentriq/modscan/internal/scan/types/enum"
	"github.com/sentriq/modscan/internal/setup/config"
	"github.com/stretchr/testify/assert"
)

func violationOf(severity enum.Severity) *types.Violation {
	return &types.Violation{
		Type:     enum.ViolationTypeToxicity,
		Severity: severity,
	}
}

func TestRiskScorer(t *testing.T) {
	t.Parallel()

	scorer := checker.NewRiskScorer(config.DefaultConfig())

	tests := []struct {
		name       string
		violations []*types.Violation
		patterns   []*types.BehaviorPattern
		activity   *types.ActivitySummary
		want       int
	}{
		{
			name: "no signals",
			want: 0,
		},
		{
			name: "severity weights sum",
			violations: []*types.Violation{
				violationOf(enum.SeverityCritical),
				violationOf(enum.SeverityHigh),
				violationOf(enum.SeverityMedium),
				violationOf(enum.SeverityLow),
			},
			want: 51,
		},
		{
			name: "pattern confidence scaled",
			patterns: []*types.BehaviorPattern{
				{Pattern: enum.PatternTypeRapidPosting, Confidence: 0.5},
			},
			want: 10,
		},
		{
			name: "all activity bonuses",
			violations: []*types.Violation{
				violationOf(enum.SeverityCritical),
				violationOf(enum.SeverityHigh),
				violationOf(enum.SeverityMedium),
				violationOf(enum.SeverityLow),
			},
			patterns: []*types.BehaviorPattern{
				{Pattern: enum.PatternTypeRapidPosting, Confidence: 0.5},
			},
			activity: &types.ActivitySummary{
				MessagesLast24h:      150,
				AverageMessageLength: 5,
				ReactionRatio:        0.05,
			},
			want: 84,
		},
		{
			name: "healthy activity adds nothing",
			violations: []*types.Violation{
				violationOf(enum.SeverityMedium),
			},
			activity: &types.ActivitySummary{
				MessagesLast24h:      10,
				AverageMessageLength: 40,
				ReactionRatio:        0.5,
			},
			want: 8,
		},
		{
			name: "score clamps at 100",
			violations: []*types.Violation{
				violationOf(enum.SeverityCritical),
				violationOf(enum.SeverityCritical),
				violationOf(enum.SeverityCritical),
				violationOf(enum.SeverityCritical),
				violationOf(enum.SeverityCritical),
			},
			want: 100,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := scorer.Score(tt.violations, tt.patterns, tt.activity)
			assert.Equal(t, tt.want, got)
		})
	}
}
