package checker

import (
	"strings"

	"github.com/sentriq/modscan/internal/scan/types"
	"github.com/sentriq/modscan/internal/setup/config"
)

// MatchesUser reports whether a message author field is attributed to the
// given user identifier under the configured strategy.
func MatchesUser(author, userID, strategy string) bool {
	if author == userID {
		return true
	}

	return strategy == config.MatchContains && strings.Contains(author, userID)
}

// FilterUserMessages returns the subsequence of messages attributed to one
// user identifier, preserving input order.
func FilterUserMessages(messages []*types.Message, userID, strategy string) []*types.Message {
	var filtered []*types.Message

	for _, msg := range messages {
		if MatchesUser(msg.User, userID, strategy) {
			filtered = append(filtered, msg)
		}
	}

	return filtered
}
