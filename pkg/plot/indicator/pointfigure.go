package indicator

import (
	"fmt"
	"math"
	"strconv"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// PointFigure builds point and figure columns from closing prices
// box: the price step of one box
// reversal: how many boxes against the column start a new one
// colorX, colorO: colors of rising (X) and falling (O) columns
func PointFigure(box float64, reversal int, colorX, colorO string) Indicator {
	return &pointFigure{
		Box:      box,
		Reversal: max(reversal, 1),
		ColorX:   colorX,
		ColorO:   colorO,
	}
}

type pointFigure struct {
	Box      float64
	Reversal int
	ColorX   string
	ColorO   string
	Columns  []plot.Sample
}

func (p pointFigure) Warmup() int {
	return 0
}

func (p pointFigure) Name() string {
	return fmt.Sprintf("P&F(%s, %d)", strconv.FormatFloat(p.Box, 'f', -1, 64), p.Reversal)
}

func (p *pointFigure) Load(bars *core.Bars) {
	p.Columns = nil
	if p.Box <= 0 || bars.Count() == 0 {
		return
	}

	box := p.Box
	reversal := box * float64(p.Reversal)
	floor := func(v float64) float64 { return math.Floor(v/box) * box }
	ceil := func(v float64) float64 { return math.Ceil(v/box) * box }

	closes := bars.Closes()
	cur := plot.Sample{Box: box, High: floor(closes[0]), Low: floor(closes[0])}
	started := false

	for _, c := range closes[1:] {
		switch {
		case !started:
			if c >= cur.High+box {
				cur.High, cur.Filled, started = floor(c), true, true
			} else if c <= cur.Low-box {
				cur.Low, cur.Filled, started = ceil(c), false, true
			}

		case cur.Filled:
			if c >= cur.High+box {
				cur.High = floor(c)
			} else if c <= cur.High-reversal {
				p.Columns = append(p.Columns, cur)
				cur = plot.Sample{Box: box, High: cur.High - box, Low: ceil(c)}
			}

		default:
			if c <= cur.Low-box {
				cur.Low = ceil(c)
			} else if c >= cur.Low+reversal {
				p.Columns = append(p.Columns, cur)
				cur = plot.Sample{Box: box, Filled: true, Low: cur.Low + box, High: floor(c)}
			}
		}
	}
	p.Columns = append(p.Columns, cur)
}

func (p pointFigure) Lines() []*plot.PlotLine {
	line := plot.NewPlotLine(plot.StylePF, p.Name(), ParseColor(p.ColorX))
	x, o := ParseColor(p.ColorX), ParseColor(p.ColorO)

	for _, s := range p.Columns {
		s.Color, s.Value = o, s.Low
		if s.Filled {
			s.Color, s.Value = x, s.High
		}
		line.AppendSample(s)
	}
	return []*plot.PlotLine{line}
}
