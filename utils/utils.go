package utils

import "math"

// FormatFloat rounds f to the given number of decimal places.
// NaN and infinities pass through untouched.
func FormatFloat(f float64, precision int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	pow := math.Pow(10, float64(precision))
	return math.Round(f*pow) / pow
}
