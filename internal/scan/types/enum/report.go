package enum

// ReportType discriminates which payload shape a moderation report carries.
//
//go:generate go tool enumer -type=ReportType -trimprefix=ReportType -transform=snake -json
type ReportType int

const (
	// ReportTypeUserSafety covers per-user risk profiles and safety issues.
	ReportTypeUserSafety ReportType = iota
	// ReportTypeChannelOptimization covers channel health and consolidation advice.
	ReportTypeChannelOptimization
	// ReportTypeServerHealth covers aggregate server-level health metrics.
	ReportTypeServerHealth
	// ReportTypeComprehensive merges the user safety and channel optimization analyses.
	ReportTypeComprehensive
)

// Trend describes the direction the community health is moving in.
//
//go:generate go tool enumer -type=Trend -trimprefix=Trend -transform=snake -json
type Trend int

const (
	TrendDeclining Trend = iota
	TrendStable
	TrendImproving
)
