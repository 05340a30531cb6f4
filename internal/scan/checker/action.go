package checker

import (
	"github.com/sentriq/modscan/internal/scan/types"
	"github.com/sentriq/modscan/internal/scan/types/enum"
	"github.com/sentriq/modscan/internal/setup/config"
)

// ActionRecommender maps a risk score and violation mix to a moderation
// action via ordered threshold rules. The first matching rule wins; rules
// are not cumulative.
type ActionRecommender struct {
	cfg *config.Action
}

// NewActionRecommender creates an ActionRecommender.
func NewActionRecommender(cfg *config.Config) *ActionRecommender {
	return &ActionRecommender{cfg: &cfg.Action}
}

// Recommend evaluates the rules in order for one user.
func (r *ActionRecommender) Recommend(score int, violations []*types.Violation) *types.ModerationAction {
	var criticalCount, highCount int

	for _, violation := range violations {
		switch violation.Severity {
		case enum.SeverityCritical:
			criticalCount++
		case enum.SeverityHigh:
			highCount++
		case enum.SeverityMedium, enum.SeverityLow:
		}
	}

	switch {
	case score >= r.cfg.BanScore || criticalCount > 0:
		return &types.ModerationAction{
			Action:   enum.ActionTypeBan,
			Priority: enum.ActionPriorityUrgent,
			Reason:   "Critical violations or extreme risk score",
			AutoFlag: true,
		}

	case score >= r.cfg.MuteScore || highCount >= r.cfg.MuteHighViolations:
		return &types.ModerationAction{
			Action:   enum.ActionTypeMute,
			Priority: enum.ActionPriorityHigh,
			Reason:   "Sustained high-severity activity",
			Duration: "24 hours",
			AutoFlag: true,
		}

	case score >= r.cfg.WarnScore:
		return &types.ModerationAction{
			Action:   enum.ActionTypeWarn,
			Priority: enum.ActionPriorityMedium,
			Reason:   "Elevated risk score",
			AutoFlag: true,
		}

	case score >= r.cfg.MonitorScore:
		return &types.ModerationAction{
			Action:   enum.ActionTypeMonitor,
			Priority: enum.ActionPriorityLow,
			Reason:   "Moderate risk worth watching",
			AutoFlag: false,
		}

	default:
		return &types.ModerationAction{
			Action:   enum.ActionTypeMonitor,
			Priority: enum.ActionPriorityLow,
			Reason:   "low risk user",
			AutoFlag: false,
		}
	}
}
