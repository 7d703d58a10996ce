package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/Zaidroid/palestine-pulse-sub002/common"
	"github.com/Zaidroid/palestine-pulse-sub002/model"
)

// LinearRegression fits value against its index by ordinary least
// squares. Needs at least 2 points. A constant series fits exactly, so
// its R2 is reported as 1.
func LinearRegression(values []float64) (model.RegressionModel, error) {
	if len(values) < 2 {
		return model.RegressionModel{}, common.ErrInsufficientData
	}

	xs := indexXs(len(values))
	intercept, slope := stat.LinearRegression(xs, values, nil, false)

	estimates := make([]float64, len(values))
	for i, x := range xs {
		estimates[i] = intercept + slope*x
	}
	r2 := stat.RSquaredFrom(estimates, values, nil)
	if math.IsNaN(r2) {
		// zero total variance, the flat fit is exact
		r2 = 1
	}

	return model.RegressionModel{
		Slope:     slope,
		Intercept: intercept,
		R2:        r2,
	}, nil
}

// Forecast extrapolates the fitted line horizon steps past the series.
// Each point carries symmetric bounds of prediction plus/minus the
// confidence multiplier times the residual standard deviation.
// Confidence is the R2 of the fit clamped to [0, 1]; callers render it
// as a confidence percentage. Predictions of count-like metrics may go
// negative, clamping is the caller's choice (see analytics).
func Forecast(values []float64, horizon int) (model.Forecast, error) {
	if horizon <= 0 {
		return model.Forecast{}, common.ErrInvalidInput
	}
	reg, err := LinearRegression(values)
	if err != nil {
		return model.Forecast{}, err
	}

	n := len(values)
	var residualSS float64
	for i, v := range values {
		r := v - (reg.Intercept + reg.Slope*float64(i))
		residualSS += r * r
	}
	margin := confidenceMultiplier() * math.Sqrt(residualSS/float64(n))

	points := make([]model.ForecastPoint, 0, horizon)
	for step := 1; step <= horizon; step++ {
		prediction := reg.Intercept + reg.Slope*float64(n-1+step)
		points = append(points, model.ForecastPoint{
			Step:  step,
			Value: prediction,
			Lower: prediction - margin,
			Upper: prediction + margin,
		})
	}

	return model.Forecast{
		Points:     points,
		Confidence: clamp01(reg.R2),
	}, nil
}

// ConfidenceInterval returns the interval around the series mean of
// plus/minus the multiplier times the standard error of the mean.
func ConfidenceInterval(values []float64) (model.Interval, error) {
	if len(values) == 0 {
		return model.Interval{}, common.ErrInvalidInput
	}
	mean := Mean(values)
	margin := confidenceMultiplier() * StdDev(values) / math.Sqrt(float64(len(values)))
	return model.Interval{
		Lower: mean - margin,
		Upper: mean + margin,
	}, nil
}

// DetectTrend classifies the overall direction of a series from the
// sign of the fitted slope. The fitted change over the whole series
// must exceed TrendTolerance of the mean magnitude to count, so a flat
// or nearly flat series reads as stable. Too few points read as stable.
func DetectTrend(values []float64) model.TrendDirection {
	reg, err := LinearRegression(values)
	if err != nil {
		return model.TrendStable
	}

	fittedChange := reg.Slope * float64(len(values)-1)
	tolerance := TrendTolerance * math.Abs(Mean(values))
	if tolerance < 1e-9 {
		tolerance = 1e-9
	}

	switch {
	case fittedChange > tolerance:
		return model.TrendIncreasing
	case fittedChange < -tolerance:
		return model.TrendDecreasing
	default:
		return model.TrendStable
	}
}

// two-sided quantile of the standard normal, ~1.96 at the 95% level
func confidenceMultiplier() float64 {
	return stdNormal.Quantile(0.5 + ConfidenceLevel/2)
}

func indexXs(n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = float64(i)
	}
	return res
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
