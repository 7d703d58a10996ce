// Package stats holds the numeric core of the dashboard: anomaly
// detection via z-score thresholding, ordinary least squares regression
// with forecasting, Pearson correlation and period comparison helpers.
// Every function is a pure transform of its arguments.
//
// Degenerate input never panics and never errors from the scalar
// helpers: empty series, zero variance and zero denominators all
// degrade to a zero sentinel so that sparse data renders as "no signal"
// instead of crashing a view. Structured constructors (LinearRegression,
// Forecast, ConfidenceInterval) return sentinel errors from the common
// package instead.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/Zaidroid/palestine-pulse-sub002/model"
)

// Mean returns the arithmetic mean, 0 for an empty series.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// StdDev returns the population standard deviation, 0 for an empty
// series. A constant series yields exactly 0.
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.PopStdDev(values, nil)
}

// Variance returns the population variance, 0 for an empty series.
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.PopVariance(values, nil)
}

// ZScores returns the z-score of every observation. A zero-variance
// series maps to all zeros.
func ZScores(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	res := make([]float64, len(values))
	mean, stddev := Mean(values), StdDev(values)
	if stddev == 0 {
		return res
	}
	for i, v := range values {
		res[i] = (v - mean) / stddev
	}
	return res
}

// Correlation returns the Pearson correlation coefficient of two
// equal-length series, 0 when the lengths differ, fewer than two points
// exist, or either series has zero variance.
func Correlation(seriesA, seriesB []float64) float64 {
	if len(seriesA) != len(seriesB) || len(seriesA) < 2 {
		return 0
	}
	if Variance(seriesA) == 0 || Variance(seriesB) == 0 {
		return 0
	}
	return stat.Correlation(seriesA, seriesB, nil)
}

// Correlate labels the coefficient with a categorical strength.
// Cuts on the absolute coefficient sit at 0.3/0.5/0.7/0.9: the
// conventional weak band is split so that coefficients under 0.3 read
// as negligible rather than weak.
func Correlate(seriesA, seriesB []float64) model.CorrelationResult {
	coefficient := Correlation(seriesA, seriesB)
	return model.CorrelationResult{
		Coefficient: coefficient,
		Strength:    classifyCorrelation(coefficient),
	}
}

func classifyCorrelation(coefficient float64) model.CorrelationStrength {
	abs := coefficient
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= CorrelationVeryStrongThreshold:
		return model.CorrelationVeryStrong
	case abs >= CorrelationStrongThreshold:
		return model.CorrelationStrong
	case abs >= CorrelationModerateThreshold:
		return model.CorrelationModerate
	case abs >= CorrelationWeakThreshold:
		return model.CorrelationWeak
	default:
		return model.CorrelationNegligible
	}
}

// PercentageChange returns (after-before)/before*100, 0 when before is
// zero so that sparse baselines stay finite on screen.
func PercentageChange(before, after float64) float64 {
	if before == 0 {
		return 0
	}
	return (after - before) / before * 100
}

// PeriodComparison computes per-metric absolute and percentage deltas
// over the union of metric names, in deterministic name order.
func PeriodComparison(period1, period2 map[string]float64) model.PeriodComparison {
	nameSet := map[string]struct{}{}
	for name := range period1 {
		nameSet[name] = struct{}{}
	}
	for name := range period2 {
		nameSet[name] = struct{}{}
	}

	names := make([]string, 0, len(nameSet))
	for name := range nameSet {
		names = append(names, name)
	}
	sort.Strings(names)

	deltas := make([]model.MetricDelta, 0, len(names))
	for _, name := range names {
		before, after := period1[name], period2[name]
		deltas = append(deltas, model.MetricDelta{
			Metric:   name,
			Before:   before,
			After:    after,
			Absolute: after - before,
			Percent:  PercentageChange(before, after),
		})
	}
	return model.PeriodComparison{Deltas: deltas}
}
