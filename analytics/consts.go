package analytics

import "time"

const (
	// DefaultWindowSize is how many observations the monitor keeps for
	// z-score baselines when the caller passes no size.
	DefaultWindowSize = 288

	// MaxDataSize caps the in-memory history before a rebalance trims it.
	MaxDataSize = 1440

	// MinDetectCount observations are required before the monitor starts
	// flagging, the baseline is meaningless below that.
	MinDetectCount = 12

	// RoundPrecision for values handed to chart components.
	RoundPrecision = 3
)

func getRecentWindow() time.Duration {
	return 30 * time.Minute
}

func getMaxAnomalyAge() time.Duration {
	return 24 * time.Hour
}

func getSuppressAnomalyCount() int {
	return 10
}
