// Package report orchestrates the per-user and per-channel analyses into
// typed moderation reports and renders the bounded text handoff.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sentriq/modscan/internal/channel"
	"github.com/sentriq/modscan/internal/scan/checker"
	"github.com/sentriq/modscan/internal/scan/types"
	"github.com/sentriq/modscan/internal/scan/types/enum"
	"github.com/sentriq/modscan/internal/setup"
	"github.com/sentriq/modscan/internal/setup/config"
	"github.com/sentriq/modscan/pkg/utils"
	"go.uber.org/zap"
)

// ChannelAnalyzer is the external channel-health collaborator. The engine
// consumes its values as opaque inputs and never computes them itself.
type ChannelAnalyzer interface {
	AnalyzeChannel(server *types.Server, ch types.Channel) *channel.Health
	AnalyzeServer(server *types.Server) *channel.ServerOptimization
}

// Assembler builds moderation reports from a message/user window and the
// channel-health collaborator. Stateless; every report recomputes from the
// full supplied window.
type Assembler struct {
	cfg      *config.Config
	checker  *checker.UserChecker
	channels ChannelAnalyzer
	logger   *zap.Logger
}

// NewAssembler creates an Assembler. A nil channels collaborator is
// replaced by a neutral one so missing channel data degrades report content
// instead of failing the report.
func NewAssembler(app *setup.App, channels ChannelAnalyzer, logger *zap.Logger) *Assembler {
	if channels == nil {
		channels = neutralAnalyzer{}
	}

	return &Assembler{
		cfg:      app.Config,
		checker:  checker.NewUserChecker(app, logger),
		channels: channels,
		logger:   logger.Named("report_assembler"),
	}
}

// Checker exposes the underlying user checker for hosts that want raw
// profiles without report framing.
func (a *Assembler) Checker() *checker.UserChecker {
	return a.checker
}

// UserSafetyReport analyzes every retained user in the window and surfaces
// high-risk profiles as prioritized issues.
func (a *Assembler) UserSafetyReport(
	messages []*types.Message, users []*types.User, query string, now time.Time,
) *types.ModerationReport {
	retained := a.narrowUsers(users, query, now)
	profiles := a.checker.AnalyzeUsers(messages, retained, now)

	var (
		highRisk []*types.UserRiskProfile
		issues   []*types.Issue
	)

	for _, profile := range profiles {
		if profile.RiskScore >= a.cfg.Report.HighRiskScore {
			highRisk = append(highRisk, profile)
		}

		if profile.RiskScore >= a.cfg.Report.CriticalRiskScore {
			issues = append(issues, &types.Issue{
				ID:       uuid.New().String(),
				Severity: enum.SeverityCritical,
				Title:    fmt.Sprintf("High-risk user %s", profile.Username),
				Description: fmt.Sprintf("Risk score %d with %d violations",
					profile.RiskScore, len(profile.Violations)),
				AffectedUsers:   []string{profile.UserID},
				SuggestedAction: profile.RecommendedAction.Reason,
			})
		}
	}

	var recommendations []*types.Recommendation
	if len(highRisk) > 0 {
		recommendations = append(recommendations, &types.Recommendation{
			Priority: enum.ActionPriorityHigh,
			Title:    "Enhance moderation coverage",
			Description: fmt.Sprintf("%d users exceed the high-risk threshold; review their profiles and apply the recommended actions",
				len(highRisk)),
		})
	}

	metrics := a.userMetrics(messages, retained, profiles, highRisk)

	sortIssues(issues)
	sortRecommendations(recommendations)

	report := &types.ModerationReport{
		ID:          uuid.New().String(),
		Type:        enum.ReportTypeUserSafety,
		Title:       "User Safety Report",
		Summary:     fmt.Sprintf("Analyzed %d users; %d flagged as high risk", len(profiles), len(highRisk)),
		GeneratedAt: now,
		HighPriorityIssues: issues,
		Recommendations:    recommendations,
		Metrics:            metrics,
		Data: &types.UserSafetyData{
			Profiles:      profiles,
			HighRiskUsers: highRisk,
		},
	}

	a.logger.Info("Generated user safety report",
		zap.Int("profiles", len(profiles)),
		zap.Int("highRisk", len(highRisk)),
		zap.Int("issues", len(issues)))

	return report
}

// ChannelOptimizationReport delegates channel scoring to the collaborator
// and surfaces confident deletion candidates as issues.
func (a *Assembler) ChannelOptimizationReport(server *types.Server, query string, now time.Time) *types.ModerationReport {
	optimization := a.channels.AnalyzeServer(server)

	var healths []*channel.Health

	if server != nil {
		for _, ch := range a.narrowChannels(server.Channels, query) {
			healths = append(healths, a.channels.AnalyzeChannel(server, ch))
		}
	}

	var issues []*types.Issue

	for _, candidate := range optimization.DeletionCandidates {
		if candidate.Confidence <= a.cfg.Report.DeletionConfidence {
			continue
		}

		issues = append(issues, &types.Issue{
			ID:       uuid.New().String(),
			Severity: enum.SeverityMedium,
			Title:    fmt.Sprintf("Channel %s is a deletion candidate", candidate.ChannelName),
			Description: fmt.Sprintf("%s (confidence %.2f)",
				candidate.Reason, candidate.Confidence),
			SuggestedAction: "Archive or delete the channel after notifying members",
		})
	}

	var recommendations []*types.Recommendation

	if len(optimization.RedundantChannels) > 0 {
		recommendations = append(recommendations, &types.Recommendation{
			Priority: enum.ActionPriorityMedium,
			Title:    "Consolidate redundant channels",
			Description: fmt.Sprintf("%d channels overlap in purpose: %s",
				len(optimization.RedundantChannels),
				strings.Join(optimization.RedundantChannels, ", ")),
		})
	}

	for _, text := range optimization.Recommendations {
		recommendations = append(recommendations, &types.Recommendation{
			Priority:    enum.ActionPriorityMedium,
			Title:       text,
			Description: "Suggested by channel health analysis",
		})
	}

	metrics := a.channelMetrics(server, healths, optimization)

	sortIssues(issues)
	sortRecommendations(recommendations)

	return &types.ModerationReport{
		ID:          uuid.New().String(),
		Type:        enum.ReportTypeChannelOptimization,
		Title:       "Channel Optimization Report",
		Summary: fmt.Sprintf("Reviewed %d channels; optimization score %d",
			metrics.TotalChannels, optimization.OptimizationScore),
		GeneratedAt:        now,
		HighPriorityIssues: issues,
		Recommendations:    recommendations,
		Metrics:            metrics,
		Data: &types.ChannelOptimizationData{
			Optimization:   optimization,
			ChannelHealths: healths,
		},
	}
}

// ComprehensiveReport runs both sub-analyses and merges their issues,
// recommendations and metrics. Merge sorts are stable so identical inputs
// produce identical output.
func (a *Assembler) ComprehensiveReport(
	messages []*types.Message, users []*types.User, server *types.Server, query string, now time.Time,
) *types.ModerationReport {
	userReport := a.UserSafetyReport(messages, users, query, now)
	channelReport := a.ChannelOptimizationReport(server, query, now)

	issues := make([]*types.Issue, 0, len(userReport.HighPriorityIssues)+len(channelReport.HighPriorityIssues))
	issues = append(issues, userReport.HighPriorityIssues...)
	issues = append(issues, channelReport.HighPriorityIssues...)
	sortIssues(issues)

	recommendations := make([]*types.Recommendation, 0,
		len(userReport.Recommendations)+len(channelReport.Recommendations))
	recommendations = append(recommendations, userReport.Recommendations...)
	recommendations = append(recommendations, channelReport.Recommendations...)
	sortRecommendations(recommendations)

	metrics := mergeMetrics(userReport.Metrics, channelReport.Metrics)

	return &types.ModerationReport{
		ID:          uuid.New().String(),
		Type:        enum.ReportTypeComprehensive,
		Title:       "Comprehensive Moderation Report",
		Summary: fmt.Sprintf("%s. %s", userReport.Summary, channelReport.Summary),
		GeneratedAt:        now,
		HighPriorityIssues: issues,
		Recommendations:    recommendations,
		Metrics:            metrics,
		Data: &types.ComprehensiveData{
			UserSafety:          userReport.Data.(*types.UserSafetyData),
			ChannelOptimization: channelReport.Data.(*types.ChannelOptimizationData),
		},
	}
}

// narrowUsers applies the query keyword heuristic. "new" or "recent"
// narrows to users who joined within the configured window; other queries
// (including "harass"/"toxic") keep the full set.
func (a *Assembler) narrowUsers(users []*types.User, query string, now time.Time) []*types.User {
	lowered := strings.ToLower(query)
	if !strings.Contains(lowered, "new") && !strings.Contains(lowered, "recent") {
		return users
	}

	cutoff := now.AddDate(0, 0, -a.cfg.Report.RecentJoinDays)

	var retained []*types.User

	for _, user := range users {
		if user.JoinedAt != nil && user.JoinedAt.After(cutoff) {
			retained = append(retained, user)
		}
	}

	return retained
}

// narrowChannels keeps channels whose name contains a query token, falling
// back to the full list when nothing matches.
func (a *Assembler) narrowChannels(channels []types.Channel, query string) []types.Channel {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return channels
	}

	var retained []types.Channel

	for _, ch := range channels {
		name := strings.ToLower(ch.Name)
		for _, token := range tokens {
			if strings.Contains(name, token) {
				retained = append(retained, ch)
				break
			}
		}
	}

	if len(retained) == 0 {
		return channels
	}

	return retained
}

// userMetrics derives window metrics from the user analysis.
func (a *Assembler) userMetrics(
	messages []*types.Message, users []*types.User,
	profiles, highRisk []*types.UserRiskProfile,
) *types.ReportMetrics {
	active := 0
	totalScore := 0

	for _, profile := range profiles {
		if profile.MessageCount > 0 {
			active++
		}

		totalScore += profile.RiskScore
	}

	health := 100
	trend := enum.TrendStable

	if len(profiles) > 0 {
		health = max(0, 100-totalScore/len(profiles))

		ratio := float64(len(highRisk)) / float64(len(profiles))
		switch {
		case ratio > 0.1:
			trend = enum.TrendDeclining
		case ratio < 0.05:
			trend = enum.TrendImproving
		default:
			trend = enum.TrendStable
		}
	}

	return &types.ReportMetrics{
		TotalUsers:        len(users),
		ActiveUsers:       active,
		TotalMessages:     len(messages),
		FlaggedUsers:      len(highRisk),
		ServerHealthScore: health,
		CommunityTrend:    trend,
	}
}

// channelMetrics derives window metrics from the collaborator output.
func (a *Assembler) channelMetrics(
	server *types.Server, healths []*channel.Health, optimization *channel.ServerOptimization,
) *types.ReportMetrics {
	total := 0
	if server != nil {
		total = len(server.Channels)
	}

	active := 0

	for _, health := range healths {
		if health.HealthScore >= 50 {
			active++
		}
	}

	trend := enum.TrendStable

	switch {
	case optimization.OptimizationScore < 60:
		trend = enum.TrendDeclining
	case optimization.OptimizationScore > 80:
		trend = enum.TrendImproving
	}

	return &types.ReportMetrics{
		TotalChannels:     total,
		ActiveChannels:    active,
		ServerHealthScore: optimization.OptimizationScore,
		CommunityTrend:    trend,
	}
}

// mergeMetrics combines the two sub-reports' metrics: health is the rounded
// mean of the sub-scores and the trend is re-derived from both.
func mergeMetrics(user, ch *types.ReportMetrics) *types.ReportMetrics {
	trend := enum.TrendStable

	switch {
	case user.CommunityTrend == enum.TrendDeclining ||
		ch.CommunityTrend == enum.TrendDeclining ||
		ch.ServerHealthScore < 60:
		trend = enum.TrendDeclining
	case user.CommunityTrend == enum.TrendImproving && ch.ServerHealthScore > 80:
		trend = enum.TrendImproving
	}

	return &types.ReportMetrics{
		TotalUsers:        user.TotalUsers,
		ActiveUsers:       user.ActiveUsers,
		TotalChannels:     ch.TotalChannels,
		ActiveChannels:    ch.ActiveChannels,
		TotalMessages:     user.TotalMessages,
		FlaggedUsers:      user.FlaggedUsers,
		ServerHealthScore: utils.RoundMean(user.ServerHealthScore, ch.ServerHealthScore),
		CommunityTrend:    trend,
	}
}

// sortIssues orders issues by severity rank, descending. The sort is stable
// to keep merged output deterministic.
func sortIssues(issues []*types.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Severity.Rank() > issues[j].Severity.Rank()
	})
}

// sortRecommendations orders recommendations by priority rank, descending.
func sortRecommendations(recommendations []*types.Recommendation) {
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Priority.Rank() > recommendations[j].Priority.Rank()
	})
}
