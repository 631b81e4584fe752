package indicator

import (
	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// PriceOption configures the price builder
type PriceOption func(*price)

// WithFillDown selects which candles get a solid body: falling ones when
// true (the default), rising ones when false
func WithFillDown(fillDown bool) PriceOption {
	return func(p *price) {
		p.FillDown = fillDown
	}
}

// WithPriceColors sets the colours of rising, falling and unchanged bars
func WithPriceColors(up, down, neutral string) PriceOption {
	return func(p *price) {
		p.ColorUp = up
		p.ColorDown = down
		p.ColorNeutral = neutral
	}
}

// Price plots the bars themselves as OHLC bars, candles or a close line
func Price(style plot.LineStyle, options ...PriceOption) Indicator {
	p := &price{
		Style:        style,
		FillDown:     true,
		ColorUp:      "green",
		ColorDown:    "red",
		ColorNeutral: "blue",
	}
	for _, option := range options {
		option(p)
	}
	return p
}

type price struct {
	Style        plot.LineStyle
	FillDown     bool
	ColorUp      string
	ColorDown    string
	ColorNeutral string
	line         *plot.PlotLine
}

func (p price) Warmup() int {
	return 0
}

func (p price) Name() string {
	return "Bars"
}

func (p *price) Load(bars *core.Bars) {
	if p.Style != plot.StyleBar && p.Style != plot.StyleCandle {
		p.line = CreateLine(plot.StyleLine, "Close", p.ColorNeutral, bars.Closes())
		return
	}

	up, down, neutral := ParseColor(p.ColorUp), ParseColor(p.ColorDown), ParseColor(p.ColorNeutral)
	p.line = plot.NewPlotLine(p.Style, p.Name(), neutral)
	for i := 0; i < bars.Count(); i++ {
		bar := bars.Bar(i)

		c := neutral
		switch {
		case bar.Close > bar.Open:
			c = up
		case bar.Close < bar.Open:
			c = down
		}

		filled := bar.Close > bar.Open
		if p.FillDown {
			filled = bar.Close < bar.Open
		}

		p.line.AppendBar(c, bar.Open, bar.High, bar.Low, bar.Close, filled)
	}
}

func (p price) Lines() []*plot.PlotLine {
	if p.line == nil {
		return []*plot.PlotLine{plot.NewPlotLine(p.Style, p.Name(), ParseColor(p.ColorNeutral))}
	}
	return []*plot.PlotLine{p.line}
}
