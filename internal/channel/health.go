// Package channel defines the value types produced by the external
// channel-health collaborator. The engine consumes these as opaque inputs
// and never computes them itself.
package channel

// Health is the externally computed activity and engagement assessment
// for a single channel.
type Health struct {
	ChannelID       string   `json:"channelId"`
	ChannelName     string   `json:"channelName"`
	ActivityScore   float64  `json:"activityScore"`   // 0-100
	EngagementScore float64  `json:"engagementScore"` // 0-100
	HealthScore     float64  `json:"healthScore"`     // 0-100
	MessagesPerDay  float64  `json:"messagesPerDay"`
	ActiveUsers     int      `json:"activeUsers"`
	Recommendations []string `json:"recommendations"`
}

// DeletionCandidate marks a channel the collaborator believes can be removed.
type DeletionCandidate struct {
	ChannelID   string  `json:"channelId"`
	ChannelName string  `json:"channelName"`
	Reason      string  `json:"reason"`
	Confidence  float64 `json:"confidence"` // 0-1
}

// ServerOptimization is the collaborator's whole-server assessment.
type ServerOptimization struct {
	OptimizationScore  int                 `json:"optimizationScore"` // 0-100
	RedundantChannels  []string            `json:"redundantChannels"`
	DeletionCandidates []DeletionCandidate `json:"deletionCandidates"`
	Recommendations    []string            `json:"recommendations"`
}
