package rpnsheet

import (
	"math"
	"strconv"
)

// FormatValue renders a computed value for display.
// Integral values get no decimal point; anything else gets exactly one
// fractional digit, rounded half away from zero (4.25 -> "4.3").
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if v == 0 {
		// Drop the sign of negative zero.
		v = 0
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	rounded := math.Round(v*10) / 10
	if rounded == 0 {
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}
