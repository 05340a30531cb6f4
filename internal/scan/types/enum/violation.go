package enum

// ViolationType categorizes a single detected rule infraction.
//
//go:generate go tool enumer -type=ViolationType -trimprefix=ViolationType -transform=snake -json
type ViolationType int

const (
	// ViolationTypeHarassment indicates targeted abusive phrasing aimed at another member.
	ViolationTypeHarassment ViolationType = iota
	// ViolationTypeSpam indicates repeated-character runs, call-to-action or scam phrasing.
	ViolationTypeSpam
	// ViolationTypeToxicity indicates lexicon-scored toxic language above threshold.
	ViolationTypeToxicity
	// ViolationTypeInappropriateContent indicates content unsuitable for the community.
	ViolationTypeInappropriateContent
	// ViolationTypeRuleViolation indicates a breach of server-specific rules.
	ViolationTypeRuleViolation
	// ViolationTypeSuspiciousLinks indicates dangerous or deceptive URLs in a message.
	ViolationTypeSuspiciousLinks
)

// Severity ranks how serious a violation or issue is.
//
//go:generate go tool enumer -type=Severity -trimprefix=Severity -transform=snake -json
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// Rank returns the numeric ordering weight used when sorting issues,
// with critical ranked highest.
func (i Severity) Rank() int {
	return int(i) + 1
}
