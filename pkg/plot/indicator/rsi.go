package indicator

import (
	"fmt"

	"github.com/markcheno/go-talib"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// RSI guide levels
const (
	RSIOverbought = 70
	RSIOversold   = 30
)

// RSI creates a new Relative Strength Index indicator with horizontal
// overbought and oversold guides
// period: the number of periods to use for calculations
// color: the color to use for the indicator line
func RSI(period int, color string) Indicator {
	return &rsi{
		BaseIndicator: BaseIndicator{
			Period: period,
			Color:  color,
		},
	}
}

type rsi struct {
	BaseIndicator
	Values core.Series[float64]
}

func (r rsi) Warmup() int {
	return r.Period
}

func (r rsi) Name() string {
	return fmt.Sprintf("RSI(%d)", r.Period)
}

func (r *rsi) Load(bars *core.Bars) {
	r.Values = nil
	if !ValidateBars(bars, r.Period+1) {
		return
	}

	r.Values = TrimData(talib.Rsi(bars.Closes(), r.Period), r.Period)
}

func (r rsi) Lines() []*plot.PlotLine {
	return []*plot.PlotLine{
		CreateLine(plot.StyleLine, r.Name(), r.Color, r.Values),
		CreateLine(plot.StyleHorizontal, "OB", "red", core.Series[float64]{RSIOverbought}),
		CreateLine(plot.StyleHorizontal, "OS", "green", core.Series[float64]{RSIOversold}),
	}
}
