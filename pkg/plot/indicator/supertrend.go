package indicator

import (
	"fmt"

	"github.com/markcheno/go-talib"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// SuperTrend creates a new SuperTrend indicator drawn as dots
// period: the number of periods to use for ATR calculation
// factor: the multiplier for the ATR
// color: the color to use for the indicator dots
func SuperTrend(period int, factor float64, color string) Indicator {
	return &supertrend{
		BaseIndicator: BaseIndicator{
			Period: period,
			Color:  color,
		},
		Factor: factor,
	}
}

type supertrend struct {
	BaseIndicator
	Factor     float64
	SuperTrend core.Series[float64]
}

func (s supertrend) Warmup() int {
	return s.Period
}

func (s supertrend) Name() string {
	return fmt.Sprintf("SuperTrend(%d,%.1f)", s.Period, s.Factor)
}

// calculateBands calculates the basic upper and lower bands
func calculateBands(high, low, atr, factor float64) (float64, float64) {
	median := (high + low) / 2.0
	return median + atr*factor, median - atr*factor
}

// updateFinalBands keeps a band unless price crossed it or it tightened
func updateFinalBands(basicUpper, basicLower, prevUpper, prevLower, prevClose float64) (float64, float64) {
	upper := prevUpper
	if basicUpper < prevUpper || prevClose > prevUpper {
		upper = basicUpper
	}

	lower := prevLower
	if basicLower > prevLower || prevClose < prevLower {
		lower = basicLower
	}

	return upper, lower
}

// determineTrend picks the band the trend follows
func determineTrend(upper, lower, price, prevTrend, prevUpper float64) float64 {
	if prevUpper == prevTrend {
		// down trend flips up when price breaks the upper band
		if price > upper {
			return lower
		}
		return upper
	}

	if price < lower {
		return upper
	}
	return lower
}

func (s *supertrend) Load(bars *core.Bars) {
	s.SuperTrend = nil
	if !ValidateBars(bars, s.Period+1) {
		return
	}

	highs, lows, closes := bars.Highs(), bars.Lows(), bars.Closes()
	atr := talib.Atr(highs, lows, closes, s.Period)

	n := len(atr)
	upper := make([]float64, n)
	lower := make([]float64, n)
	trend := make(core.Series[float64], n)

	upper[0], lower[0] = calculateBands(highs[0], lows[0], atr[0], s.Factor)
	trend[0] = upper[0]

	for i := 1; i < n; i++ {
		basicUpper, basicLower := calculateBands(highs[i], lows[i], atr[i], s.Factor)
		upper[i], lower[i] = updateFinalBands(basicUpper, basicLower, upper[i-1], lower[i-1], closes[i-1])
		trend[i] = determineTrend(upper[i], lower[i], closes[i], trend[i-1], upper[i-1])
	}

	s.SuperTrend = TrimData(trend, s.Period)
}

func (s supertrend) Lines() []*plot.PlotLine {
	return []*plot.PlotLine{
		CreateLine(plot.StyleDot, s.Name(), s.Color, s.SuperTrend),
	}
}
