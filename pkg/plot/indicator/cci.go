package indicator

import (
	"fmt"

	"github.com/markcheno/go-talib"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// CCI creates a new Commodity Channel Index indicator
// period: the number of periods to use for calculations
// color: the color to use for the indicator line
func CCI(period int, color string) Indicator {
	return &cci{
		BaseIndicator: BaseIndicator{
			Period: period,
			Color:  color,
		},
	}
}

type cci struct {
	BaseIndicator
	Values core.Series[float64]
}

func (c cci) Warmup() int {
	return c.Period - 1
}

func (c cci) Name() string {
	return fmt.Sprintf("CCI(%d)", c.Period)
}

func (c *cci) Load(bars *core.Bars) {
	c.Values = nil
	if !ValidateBars(bars, c.Period) {
		return
	}

	values := talib.Cci(bars.Highs(), bars.Lows(), bars.Closes(), c.Period)
	c.Values = TrimData(values, c.Warmup())
}

func (c cci) Lines() []*plot.PlotLine {
	return []*plot.PlotLine{
		CreateLine(plot.StyleLine, c.Name(), c.Color, c.Values),
	}
}
