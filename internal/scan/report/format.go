package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sentriq/modscan/internal/scan/types"
)

// FormatReportForAI renders a report as the bounded text block handed to
// the conversational assistant. Sections appear in fixed order: title,
// summary, issues, a type-specific detail section, recommendations and a
// metrics footer.
func (a *Assembler) FormatReportForAI(report *types.ModerationReport, query string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== %s ===\n", report.Title)

	if query != "" {
		fmt.Fprintf(&b, "Query: %s\n", query)
	}

	fmt.Fprintf(&b, "%s\n", report.Summary)

	a.writeIssues(&b, report.HighPriorityIssues)
	a.writeDetails(&b, report)
	a.writeRecommendations(&b, report.Recommendations)
	writeMetrics(&b, report.Metrics)

	return b.String()
}

// writeIssues renders the top issues, each with one suggested action.
func (a *Assembler) writeIssues(b *strings.Builder, issues []*types.Issue) {
	if len(issues) == 0 {
		return
	}

	b.WriteString("\nTop Issues:\n")

	for i, issue := range issues {
		if i >= a.cfg.Report.MaxIssues {
			break
		}

		fmt.Fprintf(b, "%d. [%s] %s: %s\n", i+1, issue.Severity, issue.Title, issue.Description)
		fmt.Fprintf(b, "   Suggested action: %s\n", issue.SuggestedAction)
	}
}

// writeDetails renders the type-specific section, one case per payload
// shape.
func (a *Assembler) writeDetails(b *strings.Builder, report *types.ModerationReport) {
	switch data := report.Data.(type) {
	case *types.UserSafetyData:
		a.writeTopProfiles(b, data.Profiles)
	case *types.ChannelOptimizationData:
		a.writeChannelAdvice(b, data)
	case *types.ServerHealthData:
		fmt.Fprintf(b, "\nServer health: %d (%s)\n", data.HealthScore, data.Trend)
	case *types.ComprehensiveData:
		a.writeTopProfiles(b, data.UserSafety.Profiles)
		a.writeChannelAdvice(b, data.ChannelOptimization)
	}
}

// writeTopProfiles renders the highest-scoring profiles.
func (a *Assembler) writeTopProfiles(b *strings.Builder, profiles []*types.UserRiskProfile) {
	if len(profiles) == 0 {
		return
	}

	sorted := make([]*types.UserRiskProfile, len(profiles))
	copy(sorted, profiles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RiskScore > sorted[j].RiskScore
	})

	b.WriteString("\nHighest Risk Users:\n")

	for i, profile := range sorted {
		if i >= a.cfg.Report.MaxDetailEntries {
			break
		}

		action := profile.RecommendedAction

		fmt.Fprintf(b, "- %s (score %d): %s, priority %s\n",
			profile.Username, profile.RiskScore, action.Action, action.Priority)
	}
}

// writeChannelAdvice renders the top collaborator recommendations.
func (a *Assembler) writeChannelAdvice(b *strings.Builder, data *types.ChannelOptimizationData) {
	recommendations := data.Optimization.Recommendations
	if len(recommendations) == 0 {
		return
	}

	b.WriteString("\nChannel Recommendations:\n")

	for i, text := range recommendations {
		if i >= a.cfg.Report.MaxDetailEntries {
			break
		}

		fmt.Fprintf(b, "- %s\n", text)
	}
}

// writeRecommendations renders the top prioritized recommendations.
func (a *Assembler) writeRecommendations(b *strings.Builder, recommendations []*types.Recommendation) {
	if len(recommendations) == 0 {
		return
	}

	b.WriteString("\nRecommendations:\n")

	for i, rec := range recommendations {
		if i >= a.cfg.Report.MaxRecommendations {
			break
		}

		fmt.Fprintf(b, "%d. [%s] %s: %s\n", i+1, rec.Priority, rec.Title, rec.Description)
	}
}

// writeMetrics renders the metrics footer on a single line.
func writeMetrics(b *strings.Builder, metrics *types.ReportMetrics) {
	if metrics == nil {
		return
	}

	fmt.Fprintf(b, "\nMetrics: %d/%d users active, %d/%d channels active, %d messages, %d flagged, health %d, trend %s\n",
		metrics.ActiveUsers, metrics.TotalUsers,
		metrics.ActiveChannels, metrics.TotalChannels,
		metrics.TotalMessages, metrics.FlaggedUsers,
		metrics.ServerHealthScore, metrics.CommunityTrend)
}
