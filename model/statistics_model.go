package model

type Severity string

const (
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Anomaly is one flagged observation in a series.
// Probability is the two-sided normal tail probability of the z-score.
type Anomaly struct {
	Index       int      `json:"index"`
	Value       float64  `json:"value"`
	ZScore      float64  `json:"zscore"`
	Probability float64  `json:"probability"`
	Severity    Severity `json:"severity"`
}

type SeriesAnomaly struct {
	Anomaly   Anomaly   `json:"anomaly"`
	TimeValue TimeValue `json:"time_value"`
}

// RegressionModel is an ordinary least squares fit of value against index.
type RegressionModel struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	R2        float64 `json:"r2"`
}

type Interval struct {
	Lower float64 `json:"l"`
	Upper float64 `json:"u"`
}

// ForecastPoint is one projected observation. Step counts from 1 past the
// end of the historical series.
type ForecastPoint struct {
	Step  int     `json:"step"`
	Value float64 `json:"v"`
	Lower float64 `json:"l"`
	Upper float64 `json:"u"`
}

type Forecast struct {
	Points []ForecastPoint `json:"points"`
	// Confidence is the goodness of fit of the underlying regression,
	// in [0, 1].
	Confidence float64 `json:"confidence"`
}

type CorrelationStrength string

const (
	CorrelationNegligible CorrelationStrength = "negligible"
	CorrelationWeak       CorrelationStrength = "weak"
	CorrelationModerate   CorrelationStrength = "moderate"
	CorrelationStrong     CorrelationStrength = "strong"
	CorrelationVeryStrong CorrelationStrength = "very strong"
)

type CorrelationResult struct {
	Coefficient float64             `json:"coefficient"`
	Strength    CorrelationStrength `json:"strength"`
}

type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// MetricDelta is the change of a single named metric between two periods.
type MetricDelta struct {
	Metric   string  `json:"metric"`
	Before   float64 `json:"before"`
	After    float64 `json:"after"`
	Absolute float64 `json:"absolute"`
	Percent  float64 `json:"percent"`
}

type PeriodComparison struct {
	Deltas []MetricDelta `json:"deltas"`
}
