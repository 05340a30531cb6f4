package types

import (
	"time"

	"github.com/sentriq/modscan/internal/channel"
	"github.com/sentriq/modscan/internal/scan/types/enum"
)

// Issue is a single prioritized problem surfaced by a report.
type Issue struct {
	ID              string        `json:"id"`
	Severity        enum.Severity `json:"severity"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	AffectedUsers   []string      `json:"affectedUsers,omitempty"`
	SuggestedAction string        `json:"suggestedAction"`
}

// Recommendation is a prioritized improvement suggested by a report.
type Recommendation struct {
	Priority    enum.ActionPriority `json:"priority"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
}

// ReportMetrics aggregates window-level counts for one report.
// ActiveUsers never exceeds TotalUsers and ActiveChannels never exceeds
// TotalChannels.
type ReportMetrics struct {
	TotalUsers        int        `json:"totalUsers"`
	ActiveUsers       int        `json:"activeUsers"`
	TotalChannels     int        `json:"totalChannels"`
	ActiveChannels    int        `json:"activeChannels"`
	TotalMessages     int        `json:"totalMessages"`
	FlaggedUsers      int        `json:"flaggedUsers"`
	ServerHealthScore int        `json:"serverHealthScore"` // 0-100
	CommunityTrend    enum.Trend `json:"communityTrend"`
}

// ReportData is the payload carried by a ModerationReport. Exactly one
// concrete shape exists per report type, so switches over the payload stay
// exhaustive.
type ReportData interface {
	ReportType() enum.ReportType
}

// UserSafetyData is the payload for user safety reports.
type UserSafetyData struct {
	Profiles      []*UserRiskProfile `json:"profiles"`
	HighRiskUsers []*UserRiskProfile `json:"highRiskUsers"`
}

// ReportType implements ReportData.
func (*UserSafetyData) ReportType() enum.ReportType { return enum.ReportTypeUserSafety }

// ChannelOptimizationData is the payload for channel optimization reports.
type ChannelOptimizationData struct {
	Optimization   *channel.ServerOptimization `json:"optimization"`
	ChannelHealths []*channel.Health           `json:"channelHealths"`
}

// ReportType implements ReportData.
func (*ChannelOptimizationData) ReportType() enum.ReportType { return enum.ReportTypeChannelOptimization }

// ServerHealthData is the payload for server health reports.
type ServerHealthData struct {
	HealthScore int        `json:"healthScore"`
	Trend       enum.Trend `json:"trend"`
}

// ReportType implements ReportData.
func (*ServerHealthData) ReportType() enum.ReportType { return enum.ReportTypeServerHealth }

// ComprehensiveData bundles both sub-analyses for comprehensive reports.
type ComprehensiveData struct {
	UserSafety          *UserSafetyData          `json:"userSafety"`
	ChannelOptimization *ChannelOptimizationData `json:"channelOptimization"`
}

// ReportType implements ReportData.
func (*ComprehensiveData) ReportType() enum.ReportType { return enum.ReportTypeComprehensive }

// ModerationReport is the top-level aggregated output for one analysis type.
type ModerationReport struct {
	ID                 string            `json:"id"`
	Type               enum.ReportType   `json:"type"`
	Title              string            `json:"title"`
	Summary            string            `json:"summary"`
	GeneratedAt        time.Time         `json:"generatedAt"`
	HighPriorityIssues []*Issue          `json:"highPriorityIssues"` // Sorted by severity rank, descending
	Recommendations    []*Recommendation `json:"recommendations"`    // Sorted by priority rank, descending
	Metrics            *ReportMetrics    `json:"metrics"`
	Data               ReportData        `json:"data"`
}
