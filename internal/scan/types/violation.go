package types

import (
	"time"

	"github.com/sentriq/modscan/internal/scan/types/enum"
)

// Violation is a single detected rule infraction tied to one message.
// Violations are created fresh per analysis call and never mutated after
// creation; within one report the collection is append-only.
type Violation struct {
	ID          string             `json:"id"`
	Type        enum.ViolationType `json:"type"`
	Severity    enum.Severity      `json:"severity"`
	Description string             `json:"description"`
	Evidence    []string           `json:"evidence"`
	Timestamp   time.Time          `json:"timestamp"`
	Channel     string             `json:"channel"`
	Resolved    bool               `json:"resolved"`
}

// BehaviorPattern is a frequency-based behavioral signal aggregated across
// a user's message history.
type BehaviorPattern struct {
	Pattern    enum.PatternType `json:"pattern"`
	Confidence float64          `json:"confidence"` // 0-1
	Frequency  int              `json:"frequency"`
	Examples   []string         `json:"examples"` // At most 3 message texts
	Timespan   string           `json:"timespan"`
}

// ActivitySummary windows a user's message timestamps into recency counts
// and simple distribution statistics.
type ActivitySummary struct {
	MessagesLast24h      int            `json:"messagesLast24h"`
	MessagesLastWeek     int            `json:"messagesLastWeek"`
	AverageMessageLength float64        `json:"averageMessageLength"`
	PeakActivityHours    []int          `json:"peakActivityHours"` // At most 3 hour-of-day values
	ChannelDistribution  map[string]int `json:"channelDistribution"`
	ReactionRatio        float64        `json:"reactionRatio"` // 0-1
}
