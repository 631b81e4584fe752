package indicator

import (
	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// Volume creates a volume histogram; bars closing above their open use
// colorUp, the others colorDown
func Volume(colorUp, colorDown string) Indicator {
	return &volume{ColorUp: colorUp, ColorDown: colorDown}
}

type volume struct {
	ColorUp   string
	ColorDown string
	line      *plot.PlotLine
}

func (v volume) Warmup() int {
	return 0
}

func (v volume) Name() string {
	return "VOL"
}

func (v *volume) Load(bars *core.Bars) {
	v.line = plot.NewPlotLine(plot.StyleHistogramBar, v.Name(), ParseColor(v.ColorUp))
	v.line.ColorBars = true

	if bars.Count() == 0 {
		return
	}

	up, down := ParseColor(v.ColorUp), ParseColor(v.ColorDown)
	for _, bar := range bars.Slice() {
		c := up
		if bar.Close < bar.Open {
			c = down
		}
		v.line.AppendSample(plot.Sample{Value: bar.Volume, Color: c})
	}
}

func (v volume) Lines() []*plot.PlotLine {
	if v.line == nil {
		return []*plot.PlotLine{plot.NewPlotLine(plot.StyleHistogramBar, v.Name(), ParseColor(v.ColorUp))}
	}
	return []*plot.PlotLine{v.line}
}
