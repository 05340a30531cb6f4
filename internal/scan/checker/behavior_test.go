package checker_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/sentriq/modscan/internal/scan/checker"
	"github.com/sentriq/modscan/internal/scan/types"
	"github.com/sentriq/modscan/internal/scan/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBehaviorPatternAnalyzerExcessiveProfanity(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	analyzer := checker.NewBehaviorPatternAnalyzer(testApp(t), zap.NewNop())

	// 4 of 10 messages contain lexicon words, spaced far enough apart that
	// no posting burst fires.
	messages := make([]*types.Message, 0, 10)
	for i := 0; i < 10; i++ {
		content := fmt.Sprintf("regular update number %d", i)
		if i < 4 {
			content = fmt.Sprintf("you are an idiot %d", i)
		}

		messages = append(messages, message(
			fmt.Sprintf("m%d", i), "alice", content, base.Add(time.Duration(i)*5*time.Minute)))
	}

	patterns := analyzer.Analyze(messages)
	require.Len(t, patterns, 1)

	pattern := patterns[0]
	assert.Equal(t, enum.PatternTypeExcessiveProfanity, pattern.Pattern)
	assert.InDelta(t, 0.4, pattern.Confidence, 0.0001)
	assert.Equal(t, 4, pattern.Frequency)
	assert.Len(t, pattern.Examples, 3)
	assert.Equal(t, "last 10 messages", pattern.Timespan)
}

func TestBehaviorPatternAnalyzerProfanityAtThreshold(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	analyzer := checker.NewBehaviorPatternAnalyzer(testApp(t), zap.NewNop())

	// Exactly 3 of 10 matching sits at the 0.3 ratio, which does not
	// exceed the threshold.
	messages := make([]*types.Message, 0, 10)
	for i := 0; i < 10; i++ {
		content := fmt.Sprintf("regular update number %d", i)
		if i < 3 {
			content = "what a loser"
		}

		messages = append(messages, message(
			fmt.Sprintf("m%d", i), "alice", content, base.Add(time.Duration(i)*5*time.Minute)))
	}

	assert.Empty(t, analyzer.Analyze(messages))
}

func TestBehaviorPatternAnalyzerRapidPosting(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	analyzer := checker.NewBehaviorPatternAnalyzer(testApp(t), zap.NewNop())

	// 8 messages one second apart produce 4 sub-minute windows of size 5,
	// which exceeds the burst threshold of 3.
	messages := make([]*types.Message, 0, 8)
	for i := 0; i < 8; i++ {
		messages = append(messages, message(
			fmt.Sprintf("m%d", i), "alice", fmt.Sprintf("ping %d", i), base.Add(time.Duration(i)*time.Second)))
	}

	patterns := analyzer.Analyze(messages)
	require.Len(t, patterns, 1)

	pattern := patterns[0]
	assert.Equal(t, enum.PatternTypeRapidPosting, pattern.Pattern)
	assert.Equal(t, 4, pattern.Frequency)
	assert.InDelta(t, 0.4, pattern.Confidence, 0.0001)
	assert.Equal(t, "last 8 messages", pattern.Timespan)
}

func TestBehaviorPatternAnalyzerSpacedMessagesAreQuiet(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	analyzer := checker.NewBehaviorPatternAnalyzer(testApp(t), zap.NewNop())

	messages := make([]*types.Message, 0, 8)
	for i := 0; i < 8; i++ {
		messages = append(messages, message(
			fmt.Sprintf("m%d", i), "alice", fmt.Sprintf("ping %d", i), base.Add(time.Duration(i)*2*time.Minute)))
	}

	assert.Empty(t, analyzer.Analyze(messages))
	assert.Empty(t, analyzer.Analyze(nil))
}
