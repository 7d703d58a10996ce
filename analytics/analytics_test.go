package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zaidroid/palestine-pulse-sub002/common"
	"github.com/Zaidroid/palestine-pulse-sub002/model"
)

func TestForecastSeries(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	t.Run("declining count metric clamps at zero", func(t *testing.T) {
		series := buildSeries(start, []float64{10, 8, 6, 4, 2})

		forecast, err := ForecastSeries(ctx, series, 3, ForecastOptions{ClampNegative: true})
		require.NoError(t, err)
		require.Len(t, forecast.Points, 3)

		assert.Equal(t, []float64{0, 0, 0}, []float64{
			forecast.Points[0].Value,
			forecast.Points[1].Value,
			forecast.Points[2].Value,
		})
		for _, point := range forecast.Points {
			assert.GreaterOrEqual(t, point.Lower, 0.0)
			assert.GreaterOrEqual(t, point.Upper, 0.0)
		}
	})

	t.Run("without clamping projections go negative", func(t *testing.T) {
		series := buildSeries(start, []float64{10, 8, 6, 4, 2})

		forecast, err := ForecastSeries(ctx, series, 2, ForecastOptions{})
		require.NoError(t, err)
		assert.Equal(t, 0.0, forecast.Points[0].Value)
		assert.Equal(t, -2.0, forecast.Points[1].Value)
	})

	t.Run("empty series", func(t *testing.T) {
		_, err := ForecastSeries(ctx, &model.TimeSeries{}, 3, ForecastOptions{})
		assert.ErrorIs(t, err, common.ErrInvalidInput)

		_, err = ForecastSeries(ctx, nil, 3, ForecastOptions{})
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	})
}

func TestCorrelationMatrix(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	seriesByName := map[string]*model.TimeSeries{
		"casualties": buildSeries(start, []float64{1, 2, 3, 4}),
		"incidents":  buildSeries(start, []float64{2, 4, 6, 8}),
		"aid_trucks": buildSeries(start, []float64{4, 3, 2, 1}),
		"short":      buildSeries(start, []float64{1, 2}),
	}

	matrix := CorrelationMatrix(ctx, seriesByName)

	assert.InDelta(t, 1.0, matrix["casualties"]["incidents"].Coefficient, 1e-9)
	assert.Equal(t, model.CorrelationVeryStrong, matrix["casualties"]["incidents"].Strength)

	assert.InDelta(t, -1.0, matrix["casualties"]["aid_trucks"].Coefficient, 1e-9)

	// symmetric
	assert.Equal(t, matrix["incidents"]["casualties"], matrix["casualties"]["incidents"])

	// diagonal is a perfect correlation
	assert.InDelta(t, 1.0, matrix["casualties"]["casualties"].Coefficient, 1e-9)

	// mismatched lengths are skipped, not zero-filled
	_, ok := matrix["casualties"]["short"]
	assert.False(t, ok)
	_, ok = matrix["short"]["casualties"]
	assert.False(t, ok)
	assert.InDelta(t, 1.0, matrix["short"]["short"].Coefficient, 1e-9)
}

func TestComparePeriods(t *testing.T) {
	ctx := context.Background()

	res := ComparePeriods(ctx,
		map[string]float64{"casualties": 3, "displaced": 900},
		map[string]float64{"casualties": 1, "displaced": 1200})

	require.Len(t, res.Deltas, 2)
	assert.Equal(t, "casualties", res.Deltas[0].Metric)
	assert.Equal(t, -2.0, res.Deltas[0].Absolute)
	assert.InDelta(t, -66.667, res.Deltas[0].Percent, 1e-9)

	assert.Equal(t, 300.0, res.Deltas[1].Absolute)
	assert.InDelta(t, 33.333, res.Deltas[1].Percent, 1e-9)
}
