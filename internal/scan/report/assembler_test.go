package report_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/sentriq/modscan/internal/channel"
	"github.com/sentriq/modscan/internal/scan/report"
	"github.com/sentriq/modscan/internal/scan/types"
	"github.com/sentriq/modscan/internal/scan/types/enum"
	"github.com/sentriq/modscan/internal/setup"
	"github.com/sentriq/modscan/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testApp(t *testing.T) *setup.App {
	t.Helper()

	lexicon := &config.Lexicon{
		ToxicityKeywords:   []string{"idiot", "stupid", "trash", "loser"},
		HarassmentPatterns: []string{`kill\s+yourself`, `\bkys\b`},
		SpamPatterns:       []string{`(?i)click\s+here`},
		MaliciousDomains:   []string{"grabify.link"},
		SafeDomains:        []string{"github.com"},
	}

	compiled, err := lexicon.Compile()
	require.NoError(t, err)

	return setup.NewTestApp(config.DefaultConfig(), compiled)
}

func message(id, user, content string, ts time.Time) *types.Message {
	return &types.Message{
		ID:        id,
		User:      user,
		Content:   content,
		Timestamp: ts,
		Channel:   "general",
	}
}

// harassmentWindow emits enough high-severity messages from one user to push
// them past the critical-risk threshold.
func harassmentWindow(user string, base time.Time) []*types.Message {
	messages := make([]*types.Message, 0, 6)
	for i := 0; i < 6; i++ {
		messages = append(messages, message(
			fmt.Sprintf("%s-%d", user, i), user, "kill yourself", base.Add(time.Duration(i)*2*time.Minute)))
	}

	return messages
}

// stubAnalyzer returns fixed collaborator values so report aggregation can
// be asserted exactly.
type stubAnalyzer struct {
	optimization *channel.ServerOptimization
	healthScore  float64
}

func (s *stubAnalyzer) AnalyzeChannel(_ *types.Server, ch types.Channel) *channel.Health {
	return &channel.Health{
		ChannelID:   ch.ID,
		ChannelName: ch.Name,
		HealthScore: s.healthScore,
	}
}

func (s *stubAnalyzer) AnalyzeServer(*types.Server) *channel.ServerOptimization {
	return s.optimization
}

func TestUserSafetyReport(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assembler := report.NewAssembler(testApp(t), nil, zap.NewNop())

	messages := append(harassmentWindow("bob", now.Add(-time.Hour)),
		message("a1", "alice", "hello there friend", now.Add(-30*time.Minute)))

	users := []*types.User{
		{ID: "alice", Name: "Alice"},
		{ID: "bob", Name: "Bob"},
	}

	result := assembler.UserSafetyReport(messages, users, "", now)

	assert.Equal(t, enum.ReportTypeUserSafety, result.Type)
	assert.Equal(t, "Analyzed 2 users; 1 flagged as high risk", result.Summary)
	assert.Equal(t, now, result.GeneratedAt)
	assert.NotEmpty(t, result.ID)

	require.Len(t, result.HighPriorityIssues, 1)
	issue := result.HighPriorityIssues[0]
	assert.Equal(t, enum.SeverityCritical, issue.Severity)
	assert.Equal(t, "High-risk user Bob", issue.Title)
	assert.Equal(t, []string{"bob"}, issue.AffectedUsers)

	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Enhance moderation coverage", result.Recommendations[0].Title)
	assert.Equal(t, enum.ActionPriorityHigh, result.Recommendations[0].Priority)

	data, ok := result.Data.(*types.UserSafetyData)
	require.True(t, ok)
	assert.Len(t, data.Profiles, 2)
	require.Len(t, data.HighRiskUsers, 1)
	assert.Equal(t, "bob", data.HighRiskUsers[0].UserID)

	metrics := result.Metrics
	require.NotNil(t, metrics)
	assert.Equal(t, 2, metrics.TotalUsers)
	assert.Equal(t, 2, metrics.ActiveUsers)
	assert.Equal(t, 7, metrics.TotalMessages)
	assert.Equal(t, 1, metrics.FlaggedUsers)

	// Alice scores 8, Bob 98; health is 100 minus the mean score.
	assert.Equal(t, 47, metrics.ServerHealthScore)
	assert.Equal(t, enum.TrendDeclining, metrics.CommunityTrend)
}

func TestUserSafetyReportNarrowsToRecentJoiners(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assembler := report.NewAssembler(testApp(t), nil, zap.NewNop())

	veteranJoin := now.AddDate(0, 0, -60)
	newbieJoin := now.AddDate(0, 0, -10)

	users := []*types.User{
		{ID: "veteran", Name: "Veteran", JoinedAt: &veteranJoin},
		{ID: "newbie", Name: "Newbie", JoinedAt: &newbieJoin},
		{ID: "unknown", Name: "Unknown"},
	}

	result := assembler.UserSafetyReport(nil, users, "any new members causing trouble?", now)

	data, ok := result.Data.(*types.UserSafetyData)
	require.True(t, ok)
	require.Len(t, data.Profiles, 1)
	assert.Equal(t, "newbie", data.Profiles[0].UserID)
}

func TestUserSafetyReportEmptyWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assembler := report.NewAssembler(testApp(t), nil, zap.NewNop())

	result := assembler.UserSafetyReport(nil, nil, "", now)

	assert.Empty(t, result.HighPriorityIssues)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, 100, result.Metrics.ServerHealthScore)
	assert.Equal(t, enum.TrendStable, result.Metrics.CommunityTrend)
}

func TestChannelOptimizationReport(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	stub := &stubAnalyzer{
		healthScore: 70,
		optimization: &channel.ServerOptimization{
			OptimizationScore: 85,
			DeletionCandidates: []channel.DeletionCandidate{
				{ChannelID: "c1", ChannelName: "dead-chat", Confidence: 0.9, Reason: "No activity in 90 days"},
				{ChannelID: "c2", ChannelName: "slow-chat", Confidence: 0.5, Reason: "Low activity"},
			},
			RedundantChannels: []string{"help", "support"},
			Recommendations:   []string{"Merge #help into #support"},
		},
	}

	assembler := report.NewAssembler(testApp(t), stub, zap.NewNop())

	server := &types.Server{
		ID:   "s1",
		Name: "Test Server",
		Channels: []types.Channel{
			{ID: "c1", Name: "dead-chat"},
			{ID: "c2", Name: "general"},
		},
	}

	result := assembler.ChannelOptimizationReport(server, "", now)

	assert.Equal(t, enum.ReportTypeChannelOptimization, result.Type)

	// Only the candidate above the confidence threshold becomes an issue.
	require.Len(t, result.HighPriorityIssues, 1)
	issue := result.HighPriorityIssues[0]
	assert.Equal(t, enum.SeverityMedium, issue.Severity)
	assert.Equal(t, "Channel dead-chat is a deletion candidate", issue.Title)

	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, "Consolidate redundant channels", result.Recommendations[0].Title)
	assert.Equal(t, "Merge #help into #support", result.Recommendations[1].Title)

	metrics := result.Metrics
	assert.Equal(t, 2, metrics.TotalChannels)
	assert.Equal(t, 2, metrics.ActiveChannels)
	assert.Equal(t, 85, metrics.ServerHealthScore)
	assert.Equal(t, enum.TrendImproving, metrics.CommunityTrend)
}

func TestChannelOptimizationReportWithoutCollaborator(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assembler := report.NewAssembler(testApp(t), nil, zap.NewNop())

	result := assembler.ChannelOptimizationReport(nil, "", now)

	assert.Empty(t, result.HighPriorityIssues)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, 75, result.Metrics.ServerHealthScore)
	assert.Equal(t, enum.TrendStable, result.Metrics.CommunityTrend)
}

func TestComprehensiveReport(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	stub := &stubAnalyzer{
		healthScore: 70,
		optimization: &channel.ServerOptimization{
			OptimizationScore: 75,
			DeletionCandidates: []channel.DeletionCandidate{
				{ChannelID: "c1", ChannelName: "dead-chat", Confidence: 0.9, Reason: "No activity in 90 days"},
			},
		},
	}

	assembler := report.NewAssembler(testApp(t), stub, zap.NewNop())

	messages := harassmentWindow("bob", now.Add(-time.Hour))
	users := []*types.User{{ID: "bob", Name: "Bob"}}
	server := &types.Server{ID: "s1", Name: "Test Server", Channels: []types.Channel{{ID: "c1", Name: "dead-chat"}}}

	result := assembler.ComprehensiveReport(messages, users, server, "", now)

	assert.Equal(t, enum.ReportTypeComprehensive, result.Type)

	// Merged issues keep severity order: the critical user issue ahead of
	// the medium channel issue.
	require.Len(t, result.HighPriorityIssues, 2)
	assert.Equal(t, enum.SeverityCritical, result.HighPriorityIssues[0].Severity)
	assert.Equal(t, enum.SeverityMedium, result.HighPriorityIssues[1].Severity)

	data, ok := result.Data.(*types.ComprehensiveData)
	require.True(t, ok)
	require.NotNil(t, data.UserSafety)
	require.NotNil(t, data.ChannelOptimization)
	assert.Len(t, data.UserSafety.Profiles, 1)

	metrics := result.Metrics
	assert.Equal(t, 1, metrics.TotalUsers)
	assert.Equal(t, 1, metrics.TotalChannels)
	assert.Equal(t, 6, metrics.TotalMessages)
	assert.Equal(t, 1, metrics.FlaggedUsers)

	// Bob's profile scores 98, so the user sub-report health is 2; merged
	// with the channel score of 75 the rounded mean is 39.
	assert.Equal(t, 39, metrics.ServerHealthScore)
	assert.Equal(t, enum.TrendDeclining, metrics.CommunityTrend)
}

func TestComprehensiveReportQuietServerStaysStable(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assembler := report.NewAssembler(testApp(t), nil, zap.NewNop())

	messages := []*types.Message{message("a1", "alice", "hello there friend", now.Add(-time.Hour))}
	users := []*types.User{{ID: "alice", Name: "Alice"}}

	result := assembler.ComprehensiveReport(messages, users, nil, "", now)

	assert.Empty(t, result.HighPriorityIssues)

	// Alice scores 8: user health 92 and an improving user trend, but the
	// neutral channel score of 75 keeps the merged trend stable.
	assert.Equal(t, 84, result.Metrics.ServerHealthScore)
	assert.Equal(t, enum.TrendStable, result.Metrics.CommunityTrend)
}
