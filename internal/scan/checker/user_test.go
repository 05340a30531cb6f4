package checker_test

import (
	"testing"
	"time"

	"github.com/sentriq/modscan/internal/scan/checker"
	"github.com/sentriq/modscan/internal/scan/types"
	"github.com/sentriq/modscan/internal/scan/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserCheckerNoMessagesSentinel(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	userChecker := checker.NewUserChecker(testApp(t), zap.NewNop())

	profile := userChecker.AnalyzeUser(nil, &types.User{ID: "dave", Name: "Dave"}, now)

	assert.Equal(t, "dave", profile.UserID)
	assert.Equal(t, "Dave", profile.Username)
	assert.Zero(t, profile.MessageCount)
	assert.Zero(t, profile.RiskScore)
	assert.Empty(t, profile.Violations)
	assert.Empty(t, profile.BehaviorPatterns)
	require.NotNil(t, profile.RecentActivity)
	require.NotNil(t, profile.RecommendedAction)
	assert.Equal(t, enum.ActionTypeMonitor, profile.RecommendedAction.Action)
	assert.Equal(t, enum.ActionPriorityLow, profile.RecommendedAction.Priority)
}

func TestUserCheckerHarassmentEscalatesToBan(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	userChecker := checker.NewUserChecker(testApp(t), zap.NewNop())

	// Six high-severity violations at 15 points each, plus the low
	// reaction-ratio bonus, land well past the ban threshold.
	messages := make([]*types.Message, 0, 6)
	for i := 0; i < 6; i++ {
		messages = append(messages, message(
			"m"+string(rune('a'+i)), "bob", "kill yourself", base.Add(time.Duration(i)*2*time.Minute)))
	}

	profile := userChecker.AnalyzeUser(messages, &types.User{ID: "bob", Name: "Bob"}, base.Add(time.Hour))

	assert.Equal(t, 6, profile.MessageCount)
	assert.Len(t, profile.Violations, 6)
	assert.Equal(t, 98, profile.RiskScore)
	assert.Equal(t, enum.ActionTypeBan, profile.RecommendedAction.Action)
	assert.Equal(t, enum.ActionPriorityUrgent, profile.RecommendedAction.Priority)
}

func TestUserCheckerDangerousLinkViolation(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	userChecker := checker.NewUserChecker(testApp(t), zap.NewNop())

	messages := []*types.Message{
		message("m1", "carol", "check http://grabify.link/track", base),
	}

	profile := userChecker.AnalyzeUser(messages, &types.User{ID: "carol", Name: "Carol"}, base.Add(time.Hour))

	require.Len(t, profile.Violations, 1)
	violation := profile.Violations[0]
	assert.Equal(t, enum.ViolationTypeSuspiciousLinks, violation.Type)
	assert.Equal(t, enum.SeverityHigh, violation.Severity)
	assert.Contains(t, violation.Evidence, "http://grabify.link/track")
	assert.Equal(t, enum.ActionTypeMonitor, profile.RecommendedAction.Action)
}

func TestUserCheckerContainmentAttribution(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	userChecker := checker.NewUserChecker(testApp(t), zap.NewNop())

	messages := []*types.Message{
		message("m1", "alice#1234", "hello there friend", base),
		message("m2", "bob", "hello as well", base),
	}

	profile := userChecker.AnalyzeUser(messages, &types.User{ID: "alice", Name: "Alice"}, base.Add(time.Hour))

	assert.Equal(t, 1, profile.MessageCount)
}

func TestUserCheckerActiveChannelsOrdering(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	userChecker := checker.NewUserChecker(testApp(t), zap.NewNop())

	messages := []*types.Message{
		message("m1", "erin", "hello there friend", base),
		message("m2", "erin", "another calm message", base.Add(5*time.Minute)),
		message("m3", "erin", "still perfectly fine", base.Add(10*time.Minute)),
	}
	messages[0].Channel = "spam"
	messages[1].Channel = "spam"

	profile := userChecker.AnalyzeUser(messages, &types.User{ID: "erin", Name: "Erin"}, base.Add(time.Hour))

	assert.Equal(t, []string{"spam", "general"}, profile.ChannelsActive)
}

func TestUserCheckerAnalyzeUsersKeepsInputOrder(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	userChecker := checker.NewUserChecker(testApp(t), zap.NewNop())

	messages := []*types.Message{
		message("m1", "alice", "hello there friend", base),
		message("m2", "bob", "kill yourself", base),
		message("m3", "carol", "another calm message", base),
	}

	users := []*types.User{
		{ID: "alice", Name: "Alice"},
		{ID: "bob", Name: "Bob"},
		{ID: "carol", Name: "Carol"},
	}

	profiles := userChecker.AnalyzeUsers(messages, users, base.Add(time.Hour))

	require.Len(t, profiles, 3)
	assert.Equal(t, "alice", profiles[0].UserID)
	assert.Equal(t, "bob", profiles[1].UserID)
	assert.Equal(t, "carol", profiles[2].UserID)
	assert.Greater(t, profiles[1].RiskScore, profiles[0].RiskScore)
}
