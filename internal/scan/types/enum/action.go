package enum

// ActionType is the moderation action recommended for a user.
//
//go:generate go tool enumer -type=ActionType -trimprefix=ActionType -transform=snake -json
type ActionType int

const (
	// ActionTypeMonitor keeps a user under observation without intervention.
	ActionTypeMonitor ActionType = iota
	// ActionTypeWarn issues a formal warning to the user.
	ActionTypeWarn
	// ActionTypeMute temporarily removes a user's ability to post.
	ActionTypeMute
	// ActionTypeKick removes the user from the server without a ban.
	ActionTypeKick
	// ActionTypeBan permanently removes the user from the server.
	ActionTypeBan
	// ActionTypeRequireVerification forces the user through re-verification.
	ActionTypeRequireVerification
)

// ActionPriority orders recommended actions and recommendations by urgency.
//
//go:generate go tool enumer -type=ActionPriority -trimprefix=ActionPriority -transform=snake -json
type ActionPriority int

const (
	ActionPriorityLow ActionPriority = iota
	ActionPriorityMedium
	ActionPriorityHigh
	ActionPriorityUrgent
)

// Rank returns the numeric ordering weight used when sorting recommendations,
// with urgent ranked highest.
func (i ActionPriority) Rank() int {
	return int(i) + 1
}
