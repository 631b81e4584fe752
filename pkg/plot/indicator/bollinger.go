package indicator

import (
	"fmt"

	"github.com/markcheno/go-talib"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// Bollinger creates upper, middle and lower Bollinger bands
// period: the moving average period
// deviations: the band width in standard deviations
// color: the color of the outer bands; the middle band is dashed
func Bollinger(period int, deviations float64, color string) Indicator {
	return &bollinger{
		BaseIndicator: BaseIndicator{
			Period: period,
			Color:  color,
		},
		Deviations: deviations,
	}
}

type bollinger struct {
	BaseIndicator
	Deviations float64
	Upper      core.Series[float64]
	Middle     core.Series[float64]
	Lower      core.Series[float64]
}

func (b bollinger) Warmup() int {
	return b.Period - 1
}

func (b bollinger) Name() string {
	return fmt.Sprintf("BB(%d, %.1f)", b.Period, b.Deviations)
}

func (b *bollinger) Load(bars *core.Bars) {
	b.Upper, b.Middle, b.Lower = nil, nil, nil
	if !ValidateBars(bars, b.Period) {
		return
	}

	upper, middle, lower := talib.BBands(bars.Closes(), b.Period, b.Deviations, b.Deviations, talib.SMA)
	b.Upper = TrimData(upper, b.Warmup())
	b.Middle = TrimData(middle, b.Warmup())
	b.Lower = TrimData(lower, b.Warmup())
}

func (b bollinger) Lines() []*plot.PlotLine {
	return []*plot.PlotLine{
		CreateLine(plot.StyleLine, "BBU", b.Color, b.Upper),
		CreateLine(plot.StyleDash, "BBM", b.Color, b.Middle),
		CreateLine(plot.StyleLine, "BBL", b.Color, b.Lower),
	}
}
