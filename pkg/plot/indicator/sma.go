package indicator

import (
	"fmt"

	"github.com/markcheno/go-talib"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// SMA creates a new Simple Moving Average indicator
func SMA(period int, color string) Indicator {
	return &sma{
		BaseIndicator: BaseIndicator{
			Period: period,
			Color:  color,
		},
	}
}

type sma struct {
	BaseIndicator
	Values core.Series[float64]
}

func (s sma) Warmup() int {
	return s.Period - 1
}

func (s sma) Name() string {
	return fmt.Sprintf("SMA(%d)", s.Period)
}

func (s *sma) Load(bars *core.Bars) {
	s.Values = nil
	if !ValidateBars(bars, s.Period) {
		return
	}

	s.Values = TrimData(talib.Sma(bars.Closes(), s.Period), s.Warmup())
}

func (s sma) Lines() []*plot.PlotLine {
	return []*plot.PlotLine{
		CreateLine(plot.StyleLine, s.Name(), s.Color, s.Values),
	}
}
