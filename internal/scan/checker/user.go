// Package checker implements the per-user analysis pipeline: violation
// detection, behavior patterns, activity summarization, risk scoring and
// action recommendation.
package checker

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sentriq/modscan/internal/scan/link"
	"github.com/sentriq/modscan/internal/scan/types"
	"github.com/sentriq/modscan/internal/scan/types/enum"
	"github.com/sentriq/modscan/internal/setup"
	"github.com/sentriq/modscan/internal/setup/config"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// UserChecker coordinates the per-user analysis by combining results from
// the violation detector, behavior analyzer, activity summarizer and link
// checker into a risk profile. It holds no mutable state across calls;
// every profile is recomputed from the supplied window.
type UserChecker struct {
	cfg         *config.Config
	detector    *ViolationDetector
	behavior    *BehaviorPatternAnalyzer
	activity    *ActivitySummarizer
	scorer      *RiskScorer
	recommender *ActionRecommender
	links       *link.Checker
	logger      *zap.Logger
}

// NewUserChecker creates a UserChecker with all analysis dependencies.
func NewUserChecker(app *setup.App, logger *zap.Logger) *UserChecker {
	return &UserChecker{
		cfg:         app.Config,
		detector:    NewViolationDetector(app, logger),
		behavior:    NewBehaviorPatternAnalyzer(app, logger),
		activity:    NewActivitySummarizer(),
		scorer:      NewRiskScorer(app.Config),
		recommender: NewActionRecommender(app.Config),
		links:       link.NewChecker(app, logger),
		logger:      logger.Named("user_checker"),
	}
}

// AnalyzeUser computes the full risk profile for one user against the
// supplied message window. A user with no attributed messages yields the
// zero-risk sentinel profile.
func (c *UserChecker) AnalyzeUser(messages []*types.Message, user *types.User, now time.Time) *types.UserRiskProfile {
	userMessages := FilterUserMessages(messages, user.ID, c.cfg.Matching.Strategy)

	profile := &types.UserRiskProfile{
		UserID:       user.ID,
		Username:     user.Name,
		MessageCount: len(userMessages),
	}

	if len(userMessages) == 0 {
		profile.RecentActivity = c.activity.Summarize(nil, now)
		profile.RecommendedAction = c.recommender.Recommend(0, nil)

		return profile
	}

	violations := c.detector.Detect(userMessages)
	violations = append(violations, c.linkViolations(userMessages)...)

	patterns := c.behavior.Analyze(userMessages)
	activity := c.activity.Summarize(userMessages, now)

	profile.Violations = violations
	profile.BehaviorPatterns = patterns
	profile.RecentActivity = activity
	profile.RiskScore = c.scorer.Score(violations, patterns, activity)
	profile.RecommendedAction = c.recommender.Recommend(profile.RiskScore, violations)
	profile.ChannelsActive = activeChannels(activity)

	c.logger.Debug("Analyzed user",
		zap.String("userID", user.ID),
		zap.Int("messages", len(userMessages)),
		zap.Int("riskScore", profile.RiskScore),
		zap.Stringer("action", profile.RecommendedAction.Action))

	return profile
}

// AnalyzeUsers analyzes a batch of users concurrently. Per-user analysis
// has no cross-user dependency; results are returned in input order so
// identical inputs produce identical output.
func (c *UserChecker) AnalyzeUsers(messages []*types.Message, users []*types.User, now time.Time) []*types.UserRiskProfile {
	profiles := make([]*types.UserRiskProfile, len(users))

	p := pool.New()
	for i, user := range users {
		i, user := i, user
		p.Go(func() {
			profiles[i] = c.AnalyzeUser(messages, user, now)
		})
	}

	p.Wait()

	c.logger.Info("Analyzed user batch",
		zap.Int("users", len(users)),
		zap.Int("messages", len(messages)))

	return profiles
}

// linkViolations emits a suspicious_links violation for every message
// carrying a dangerous URL.
func (c *UserChecker) linkViolations(messages []*types.Message) []*types.Violation {
	var violations []*types.Violation

	for _, msg := range messages {
		for _, result := range c.links.AnalyzeMessageLinks([]*types.Message{msg}) {
			if result.Status != enum.LinkStatusDangerous {
				continue
			}

			evidence := append([]string{result.URL}, result.Reasons...)

			violations = append(violations, &types.Violation{
				ID:          uuid.New().String(),
				Type:        enum.ViolationTypeSuspiciousLinks,
				Severity:    enum.SeverityHigh,
				Description: "Message contains a dangerous link",
				Evidence:    evidence,
				Timestamp:   msg.Timestamp,
				Channel:     msg.Channel,
			})
		}
	}

	return violations
}

// activeChannels lists the channels a user posted in, most active first.
func activeChannels(activity *types.ActivitySummary) []string {
	if len(activity.ChannelDistribution) == 0 {
		return nil
	}

	channels := make([]string, 0, len(activity.ChannelDistribution))
	for name := range activity.ChannelDistribution {
		channels = append(channels, name)
	}

	dist := activity.ChannelDistribution
	sort.SliceStable(channels, func(i, j int) bool {
		if dist[channels[i]] != dist[channels[j]] {
			return dist[channels[i]] > dist[channels[j]]
		}

		return channels[i] < channels[j]
	})

	return channels
}
