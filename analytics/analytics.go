// Package analytics composes the stats primitives into the results the
// dashboard panels render: forecast curves, correlation matrices and
// period comparisons.
package analytics

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/Zaidroid/palestine-pulse-sub002/common"
	"github.com/Zaidroid/palestine-pulse-sub002/model"
	"github.com/Zaidroid/palestine-pulse-sub002/stats"
	"github.com/Zaidroid/palestine-pulse-sub002/utils"
)

type ForecastOptions struct {
	// ClampNegative floors predictions and lower bounds at zero, for
	// count-like metrics where a negative projection is meaningless.
	ClampNegative bool
}

// ForecastSeries projects the series horizon steps ahead, rounded for
// display.
func ForecastSeries(ctx context.Context, series *model.TimeSeries,
	horizon int, opts ForecastOptions) (*model.Forecast, error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("ForecastSeries recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()))
		}
	}()

	if series.IsEmpty() {
		return nil, common.ErrInvalidInput
	}

	forecast, err := stats.Forecast(series.Floats(), horizon)
	if err != nil {
		logger.Error("Forecast failed", zap.Error(err),
			zap.Any("labels", series.Labels), zap.Int("horizon", horizon))
		return nil, err
	}

	for i := range forecast.Points {
		point := &forecast.Points[i]
		if opts.ClampNegative {
			point.Value = max(point.Value, 0)
			point.Lower = max(point.Lower, 0)
			point.Upper = max(point.Upper, 0)
		}
		point.Value = utils.FormatFloat(point.Value, RoundPrecision)
		point.Lower = utils.FormatFloat(point.Lower, RoundPrecision)
		point.Upper = utils.FormatFloat(point.Upper, RoundPrecision)
	}

	return &forecast, nil
}

// CorrelationMatrix computes pairwise Pearson correlations over named
// series. The result is symmetric and keyed both ways, the diagonal is
// a perfect correlation. Length-mismatched pairs are skipped with a
// warning instead of poisoning the whole matrix.
func CorrelationMatrix(ctx context.Context,
	seriesByName map[string]*model.TimeSeries) map[string]map[string]model.CorrelationResult {
	logger := utils.GetLogger(ctx)

	names := make([]string, 0, len(seriesByName))
	for name := range seriesByName {
		names = append(names, name)
	}
	sort.Strings(names)

	res := make(map[string]map[string]model.CorrelationResult, len(names))
	for _, name := range names {
		res[name] = map[string]model.CorrelationResult{}
	}

	for i, nameA := range names {
		floatsA := seriesByName[nameA].Floats()
		for _, nameB := range names[i:] {
			floatsB := seriesByName[nameB].Floats()
			if len(floatsA) != len(floatsB) {
				logger.Warn("series length mismatch, skip pair",
					zap.String("seriesA", nameA), zap.String("seriesB", nameB),
					zap.Int("lenA", len(floatsA)), zap.Int("lenB", len(floatsB)))
				continue
			}
			cell := stats.Correlate(floatsA, floatsB)
			cell.Coefficient = utils.FormatFloat(cell.Coefficient, RoundPrecision)
			res[nameA][nameB] = cell
			res[nameB][nameA] = cell
		}
	}

	return res
}

// ComparePeriods reports per-metric deltas between two named periods.
func ComparePeriods(ctx context.Context,
	period1, period2 map[string]float64) model.PeriodComparison {
	logger := utils.GetLogger(ctx)

	comparison := stats.PeriodComparison(period1, period2)
	for i := range comparison.Deltas {
		delta := &comparison.Deltas[i]
		delta.Absolute = utils.FormatFloat(delta.Absolute, RoundPrecision)
		delta.Percent = utils.FormatFloat(delta.Percent, RoundPrecision)
	}

	logger.Info("compared periods", zap.Int("metricCnt", len(comparison.Deltas)))
	return comparison
}
