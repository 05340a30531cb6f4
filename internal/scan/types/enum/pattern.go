package enum

// PatternType identifies a frequency-based behavioral signal aggregated
// across a user's message history.
//
//go:generate go tool enumer -type=PatternType -trimprefix=PatternType -transform=snake -json
type PatternType int

const (
	// PatternTypeExcessiveProfanity indicates a high ratio of lexicon hits across messages.
	PatternTypeExcessiveProfanity PatternType = iota
	// PatternTypeTargetedHarassment indicates repeated abuse aimed at specific members.
	PatternTypeTargetedHarassment
	// PatternTypeSpamPosting indicates repeated promotional or scam posting.
	PatternTypeSpamPosting
	// PatternTypeLinkFarming indicates posting dominated by outbound links.
	PatternTypeLinkFarming
	// PatternTypeRapidPosting indicates bursts of messages in short time windows.
	PatternTypeRapidPosting
	// PatternTypeOffTopic indicates persistent posting outside channel topics.
	PatternTypeOffTopic
	// PatternTypeBotLike indicates automation-like timing or content regularity.
	PatternTypeBotLike
)
