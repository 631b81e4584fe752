package indicator

import (
	"fmt"

	"github.com/markcheno/go-talib"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// EMA creates a new Exponential Moving Average indicator
// period: the number of periods to use for calculations
// color: the color to use for the indicator line
func EMA(period int, color string) Indicator {
	return &ema{
		BaseIndicator: BaseIndicator{
			Period: period,
			Color:  color,
		},
	}
}

type ema struct {
	BaseIndicator
	Values core.Series[float64]
}

func (e ema) Warmup() int {
	return e.Period
}

func (e ema) Name() string {
	return fmt.Sprintf("EMA(%d)", e.Period)
}

func (e *ema) Load(bars *core.Bars) {
	e.Values = nil
	if !ValidateBars(bars, e.Period+1) {
		return
	}

	e.Values = TrimData(talib.Ema(bars.Closes(), e.Period), e.Period)
}

func (e ema) Lines() []*plot.PlotLine {
	return []*plot.PlotLine{
		CreateLine(plot.StyleLine, e.Name(), e.Color, e.Values),
	}
}
