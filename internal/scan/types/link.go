package types

import "github.com/sentriq/modscan/internal/scan/types/enum"

// LinkSafetyResult is the safety verdict for one extracted URL.
type LinkSafetyResult struct {
	URL        string          `json:"url"`
	Status     enum.LinkStatus `json:"status"`
	Reasons    []string        `json:"reasons"` // Ordered; first reason decided the status
	Confidence float64         `json:"confidence"`
}

// LinkPurposeClassification describes what an extracted URL is for.
type LinkPurposeClassification struct {
	URL         string            `json:"url"`
	Purpose     string            `json:"purpose"`
	Category    enum.LinkCategory `json:"category"`
	Description string            `json:"description"`
	Relevance   float64           `json:"relevance"` // 0-1
}
