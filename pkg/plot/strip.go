package plot

import (
	"math"
	"strconv"
)

// Strip formats a value for on-chart labels using the price scale rule:
// four decimals below 1, two decimals up to 1000, none above.
func Strip(v float64) string {
	return StripPrecision(v, 4)
}

// StripPrecision is Strip with a custom precision for values below 1
func StripPrecision(v float64, precision int) string {
	switch a := math.Abs(v); {
	case a < 1:
		return strconv.FormatFloat(v, 'f', precision, 64)
	case a > 1000:
		return strconv.FormatFloat(v, 'f', 0, 64)
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}
