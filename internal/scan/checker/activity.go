package checker

import (
	"sort"
	"time"

	"github.com/sentriq/modscan/internal/scan/types"
)

// maxPeakHours bounds how many hour-of-day values a summary reports.
const maxPeakHours = 3

// ActivitySummarizer windows message timestamps into recency counts, average
// length and a peak-hour histogram. It is stateless; "now" is an explicit
// argument so results are reproducible.
type ActivitySummarizer struct{}

// NewActivitySummarizer creates an ActivitySummarizer.
func NewActivitySummarizer() *ActivitySummarizer {
	return &ActivitySummarizer{}
}

// Summarize computes the activity summary for one user's messages.
// A zero-message input yields a zero-valued summary, never a division by
// zero.
func (s *ActivitySummarizer) Summarize(messages []*types.Message, now time.Time) *types.ActivitySummary {
	summary := &types.ActivitySummary{
		ChannelDistribution: make(map[string]int),
	}

	if len(messages) == 0 {
		return summary
	}

	var (
		totalLength   int
		withReactions int
		hourOrder     []int
	)

	hourCounts := make(map[int]int)

	for _, msg := range messages {
		age := now.Sub(msg.Timestamp)
		if age <= 24*time.Hour {
			summary.MessagesLast24h++
		}

		if age <= 7*24*time.Hour {
			summary.MessagesLastWeek++
		}

		totalLength += len(msg.Content)
		summary.ChannelDistribution[msg.Channel]++

		if msg.Reactions > 0 {
			withReactions++
		}

		hour := msg.Timestamp.Hour()
		if _, seen := hourCounts[hour]; !seen {
			hourOrder = append(hourOrder, hour)
		}

		hourCounts[hour]++
	}

	summary.AverageMessageLength = float64(totalLength) / float64(len(messages))
	summary.ReactionRatio = float64(withReactions) / float64(len(messages))
	summary.PeakActivityHours = peakHours(hourOrder, hourCounts)

	return summary
}

// peakHours returns the top hours by count. Ties keep first-encountered
// order, which the stable sort preserves.
func peakHours(hourOrder []int, hourCounts map[int]int) []int {
	sorted := make([]int, len(hourOrder))
	copy(sorted, hourOrder)

	sort.SliceStable(sorted, func(i, j int) bool {
		return hourCounts[sorted[i]] > hourCounts[sorted[j]]
	})

	if len(sorted) > maxPeakHours {
		sorted = sorted[:maxPeakHours]
	}

	return sorted
}
