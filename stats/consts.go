package stats

const (
	// DefaultAnomalyThreshold is the z-score cutoff used when callers pass
	// a non-positive threshold.
	DefaultAnomalyThreshold = 2.0

	HighZScore     = 2.0
	CriticalZScore = 3.0

	// ConfidenceLevel drives the interval width multiplier (two-sided).
	ConfidenceLevel = 0.95

	CorrelationWeakThreshold       = 0.3
	CorrelationModerateThreshold   = 0.5
	CorrelationStrongThreshold     = 0.7
	CorrelationVeryStrongThreshold = 0.9

	// TrendTolerance: the fitted change over the whole series must exceed
	// this fraction of the mean magnitude to count as a trend.
	TrendTolerance = 0.01
)

func getAnomalyThreshold(threshold float64) float64 {
	if threshold <= 0 {
		return DefaultAnomalyThreshold
	}
	return threshold
}
