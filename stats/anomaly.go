package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Zaidroid/palestine-pulse-sub002/model"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// DetectAnomalies flags every observation whose z-score reaches the
// threshold in absolute value. The mean and standard deviation are
// computed once over the whole series. A zero-variance series has no
// anomalies. A non-positive threshold falls back to
// DefaultAnomalyThreshold.
func DetectAnomalies(values []float64, thresholdStdDevs float64) []model.Anomaly {
	threshold := getAnomalyThreshold(thresholdStdDevs)
	if len(values) == 0 {
		return nil
	}

	mean, stddev := Mean(values), StdDev(values)
	if stddev == 0 {
		return nil
	}

	var res []model.Anomaly
	for i, v := range values {
		z := (v - mean) / stddev
		if math.Abs(z) < threshold {
			continue
		}
		res = append(res, model.Anomaly{
			Index:       i,
			Value:       v,
			ZScore:      z,
			Probability: 2 * stdNormal.Survival(math.Abs(z)),
			Severity:    classifySeverity(z),
		})
	}
	return res
}

// AnomalyIndices returns only the flagged positions.
func AnomalyIndices(values []float64, thresholdStdDevs float64) []int {
	anomalies := DetectAnomalies(values, thresholdStdDevs)
	if len(anomalies) == 0 {
		return nil
	}
	res := make([]int, 0, len(anomalies))
	for _, anomaly := range anomalies {
		res = append(res, anomaly.Index)
	}
	return res
}

func classifySeverity(z float64) model.Severity {
	abs := math.Abs(z)
	switch {
	case abs > CriticalZScore:
		return model.SeverityCritical
	case abs > HighZScore:
		return model.SeverityHigh
	default:
		return model.SeverityModerate
	}
}
