package report_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sentriq/modscan/internal/scan/report"
	"github.com/sentriq/modscan/internal/scan/types"
	"github.com/sentriq/modscan/internal/scan/types/enum"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFormatReportForAISections(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assembler := report.NewAssembler(testApp(t), nil, zap.NewNop())

	messages := harassmentWindow("bob", now.Add(-time.Hour))
	users := []*types.User{{ID: "bob", Name: "Bob"}}

	result := assembler.UserSafetyReport(messages, users, "", now)
	text := assembler.FormatReportForAI(result, "who is causing trouble")

	assert.True(t, strings.HasPrefix(text, "=== User Safety Report ===\n"))
	assert.Contains(t, text, "Query: who is causing trouble\n")
	assert.Contains(t, text, result.Summary)
	assert.Contains(t, text, "Top Issues:")
	assert.Contains(t, text, "High-risk user Bob")
	assert.Contains(t, text, "Highest Risk Users:")
	assert.Contains(t, text, "- Bob (score 98): ban, priority urgent")
	assert.Contains(t, text, "Recommendations:")
	assert.Contains(t, text, "Metrics: 1/1 users active")
}

func TestFormatReportForAIWithoutQuery(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assembler := report.NewAssembler(testApp(t), nil, zap.NewNop())

	result := assembler.UserSafetyReport(nil, nil, "", now)
	text := assembler.FormatReportForAI(result, "")

	assert.NotContains(t, text, "Query:")
	assert.NotContains(t, text, "Top Issues:")
	assert.NotContains(t, text, "Highest Risk Users:")
	assert.Contains(t, text, "Metrics: 0/0 users active")
}

func TestFormatReportForAIBoundsSections(t *testing.T) {
	t.Parallel()

	assembler := report.NewAssembler(testApp(t), nil, zap.NewNop())

	issues := make([]*types.Issue, 0, 7)
	for i := 0; i < 7; i++ {
		issues = append(issues, &types.Issue{
			ID:              fmt.Sprintf("issue-%d", i),
			Severity:        enum.SeverityMedium,
			Title:           fmt.Sprintf("Issue %d", i),
			Description:     "detail",
			SuggestedAction: "review",
		})
	}

	recommendations := make([]*types.Recommendation, 0, 4)
	for i := 0; i < 4; i++ {
		recommendations = append(recommendations, &types.Recommendation{
			Priority:    enum.ActionPriorityMedium,
			Title:       fmt.Sprintf("Recommendation %d", i),
			Description: "detail",
		})
	}

	profiles := make([]*types.UserRiskProfile, 0, 5)
	for i := 0; i < 5; i++ {
		profiles = append(profiles, &types.UserRiskProfile{
			UserID:            fmt.Sprintf("u%d", i),
			Username:          fmt.Sprintf("User%d", i),
			RiskScore:         90 - i,
			RecommendedAction: &types.ModerationAction{Action: enum.ActionTypeWarn, Priority: enum.ActionPriorityMedium},
		})
	}

	result := &types.ModerationReport{
		Type:               enum.ReportTypeUserSafety,
		Title:              "User Safety Report",
		Summary:            "synthetic report",
		HighPriorityIssues: issues,
		Recommendations:    recommendations,
		Data:               &types.UserSafetyData{Profiles: profiles},
	}

	text := assembler.FormatReportForAI(result, "")

	// Rendering caps: 5 issues, 3 recommendations, 3 detail entries.
	assert.Contains(t, text, "5. [medium] Issue 4")
	assert.NotContains(t, text, "Issue 5")
	assert.Contains(t, text, "3. [medium] Recommendation 2")
	assert.NotContains(t, text, "Recommendation 3")
	assert.Contains(t, text, "User2 (score 88)")
	assert.NotContains(t, text, "User3")
}
