package report

import (
	"github.com/sentriq/modscan/internal/channel"
	"github.com/sentriq/modscan/internal/scan/types"
)

// neutralOptimizationScore is substituted when no channel collaborator or
// server data is supplied. It sits between the declining (<60) and
// improving (>80) bands so missing data reads as stable.
const neutralOptimizationScore = 75

// neutralAnalyzer substitutes neutral metric values when no channel-health
// collaborator is supplied, so reports degrade instead of failing.
type neutralAnalyzer struct{}

func (neutralAnalyzer) AnalyzeChannel(_ *types.Server, ch types.Channel) *channel.Health {
	return &channel.Health{
		ChannelID:   ch.ID,
		ChannelName: ch.Name,
		HealthScore: 50,
	}
}

func (neutralAnalyzer) AnalyzeServer(*types.Server) *channel.ServerOptimization {
	return &channel.ServerOptimization{
		OptimizationScore: neutralOptimizationScore,
	}
}
