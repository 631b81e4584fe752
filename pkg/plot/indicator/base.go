// Package indicator turns bar sequences into plot lines. Values are
// computed with go-talib; the plot only draws what these builders produce.
package indicator

import (
	"image/color"

	"github.com/samber/lo"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// Indicator builds one or more plot lines from bars
type Indicator interface {
	// Name returns the formatted name of the indicator
	Name() string
	// Warmup returns the number of bars consumed before the first value
	Warmup() int
	// Load calculates the indicator values from the provided bars
	Load(bars *core.Bars)
	// Lines returns the visual representation of the indicator
	Lines() []*plot.PlotLine
}

// BaseIndicator provides common functionality for all indicators
type BaseIndicator struct {
	Period int
	Color  string
}

// ValidateBars checks if there are enough bars for the indicator period
func ValidateBars(bars *core.Bars, period int) bool {
	return bars.Count() >= period
}

// TrimData drops the warmup values from the front of a series
func TrimData(data core.Series[float64], period int) core.Series[float64] {
	if period <= 0 || len(data) <= period {
		return data
	}
	return data[period:]
}

// CreateLine creates a plot line holding values
func CreateLine(style plot.LineStyle, label, colorName string, values core.Series[float64]) *plot.PlotLine {
	line := plot.NewPlotLine(style, label, ParseColor(colorName))
	line.AppendValues(values...)
	return line
}

// ParseColor parses a colour name, falling back to white
func ParseColor(name string) color.RGBA {
	c, err := plot.ParseColor(name)
	if err != nil {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return c
}

// Compose loads every indicator against bars and gathers their lines, in
// order, into one plot indicator
func Compose(name string, bars *core.Bars, indicators ...Indicator) *plot.Indicator {
	lines := lo.FlatMap(indicators, func(ind Indicator, _ int) []*plot.PlotLine {
		ind.Load(bars)
		return ind.Lines()
	})
	return plot.NewIndicator(name, lines...)
}
