package utils

import "math"

// ClampConfidence bounds a confidence or relevance value to [0, 1],
// rounded to 2 decimal places.
func ClampConfidence(v float64) float64 {
	v = math.Round(v*100) / 100
	return math.Max(0, math.Min(1, v))
}

// ClampScore bounds an integer score to [0, 100].
func ClampScore(v int) int {
	if v < 0 {
		return 0
	}

	if v > 100 {
		return 100
	}

	return v
}

// RoundMean returns the arithmetic mean of two scores rounded to the
// nearest integer.
func RoundMean(a, b int) int {
	return int(math.Round(float64(a+b) / 2))
}
