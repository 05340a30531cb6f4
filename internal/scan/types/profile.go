package types

import "github.com/sentriq/modscan/internal/scan/types/enum"

// ModerationAction is the recommended (never enforced) response to a user's
// risk profile.
type ModerationAction struct {
	Action   enum.ActionType     `json:"action"`
	Priority enum.ActionPriority `json:"priority"`
	Reason   string              `json:"reason"`
	Duration string              `json:"duration,omitempty"`
	AutoFlag bool                `json:"autoFlag"`
}

// UserRiskProfile is the per-user aggregation of violations, patterns,
// activity and the resulting score and action. Profiles are recomputed from
// scratch on every call; there is no cached or versioned state.
type UserRiskProfile struct {
	UserID            string             `json:"userId"`
	Username          string             `json:"username"`
	RiskScore         int                `json:"riskScore"` // 0-100
	Violations        []*Violation       `json:"violations"`
	BehaviorPatterns  []*BehaviorPattern `json:"behaviorPatterns"`
	RecentActivity    *ActivitySummary   `json:"recentActivity"`
	RecommendedAction *ModerationAction  `json:"recommendedAction"`
	MessageCount      int                `json:"messageCount"`
	ChannelsActive    []string           `json:"channelsActive"`
}
