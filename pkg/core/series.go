package core

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

// Series is a time series of ordered values
// It provides methods for analyzing time series data
type Series[T constraints.Ordered] []T

// Values returns the underlying slice of values
func (s Series[T]) Values() []T {
	return s
}

// Length returns the number of values in the series
func (s Series[T]) Length() int {
	return len(s)
}

// Last returns the value at a specified position from the end
// position 0 is the last value, 1 is the second-to-last, etc.
func (s Series[T]) Last(position int) T {
	return s[len(s)-1-position]
}

// LastValues returns a slice with the last 'size' values
// If size exceeds the length, returns the entire series
func (s Series[T]) LastValues(size int) Series[T] {
	if l := len(s); l > size {
		return s[l-size:]
	}
	return s
}

// Window returns the values in [start, end) clipped to the series bounds
func (s Series[T]) Window(start, end int) Series[T] {
	start = max(start, 0)
	end = min(end, len(s))
	if start >= end {
		return Series[T]{}
	}
	return s[start:end]
}

// HighLow returns the maximum and minimum of a float series.
// ok is false for an empty series.
func HighLow(s Series[float64]) (high, low float64, ok bool) {
	if len(s) == 0 {
		return 0, 0, false
	}
	return floats.Max(s), floats.Min(s), true
}

// NumDecPlaces returns the number of decimal places in a float64
// Useful for formatting with appropriate precision
func NumDecPlaces(v float64) int64 {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i > -1 {
		return int64(len(s) - i - 1)
	}
	return 0
}
