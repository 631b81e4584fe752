package plot

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/raykavin/chartplot/pkg/core"
)

// Chart object types whose anchors show up as trades in the info panel
const (
	buyArrowType  = "BuyArrow"
	sellArrowType = "SellArrow"
)

func (p *Plot) drawXGrid(vp Viewport) {
	if !p.style.GridLines {
		return
	}

	pen := Pen{Color: p.style.Grid, Style: DotPen}
	for _, i := range p.xGrid {
		if i < vp.StartIndex {
			continue
		}
		x := vp.IndexToX(i)
		if x >= vp.Width {
			continue
		}
		p.buffer.DrawLine(x, 0, x, vp.Height, pen)
	}
}

func (p *Plot) drawYGrid(vp Viewport) {
	if !p.style.GridLines {
		return
	}

	pen := Pen{Color: p.style.Grid, Style: DotPen}
	for _, v := range p.scaler.ScaleArray() {
		y := p.scaler.ConvertToY(v)
		p.buffer.DrawLine(0, y, vp.Width, y, pen)
	}
}

// drawInfo writes the header line: last bar date, then the last value of
// every line
func (p *Plot) drawInfo() {
	font := p.style.Font
	pos := p.style.StartX

	text := func(s string, c color.RGBA) {
		box := DrawLabel(p.buffer, font, pos, 0, s, c, p.style.Background, false)
		pos = box.Max.X
	}

	last := p.bars.Bar(p.bars.Count() - 1)
	text(last.DateString(p.style.DateLayout)+" ", p.style.Border)

	if !p.indicator.Enabled {
		return
	}

	for _, line := range p.indicator.Lines {
		if line.Len() == 0 || line.Style == StyleHorizontal || line.Style == StyleInvisible {
			continue
		}

		if line.Style != StyleBar && line.Style != StyleCandle {
			text(fmt.Sprintf("%s=%s ", line.Label, Strip(line.Last().Value)), line.Color)
			continue
		}

		s := line.Last()
		if line.Len() > 1 {
			prev := line.Sample(line.Len() - 2).Close
			ch := s.Close - prev
			pct := 0.0
			if prev != 0 {
				pct = ch / prev * 100
			}

			c := p.style.Unchanged
			switch {
			case ch < 0:
				c = p.style.Down
			case ch > 0:
				c = p.style.Up
			}
			text(fmt.Sprintf("CH=%s (%.2f%%) ", Strip(ch), pct), c)
		}

		text(fmt.Sprintf("O=%s H=%s L=%s C=%s ",
			Strip(s.Open), Strip(s.High), Strip(s.Low), Strip(s.Close)), p.style.Border)
	}
}

// CrossHair arms the crosshair at a pixel position, optionally redrawing
func (p *Plot) CrossHair(x, y int, redraw bool) {
	if !p.hasBars() {
		return
	}

	p.setPointer(x, y)
	p.crossHairArmed = true
	p.crossHairTime = p.pointerTime
	p.crossHairValue = p.pointerValue

	if redraw {
		p.Draw()
	}
}

func (p *Plot) drawCrossHair(vp Viewport) {
	if !p.style.Crosshairs || !p.crossHairArmed {
		return
	}

	pen := Pen{Color: p.style.Border, Style: DotPen}
	y := p.scaler.ConvertToY(p.crossHairValue)
	x := vp.XFromDate(p.bars, p.crossHairTime)

	p.buffer.DrawLine(0, y, vp.Width, y, pen)
	p.buffer.DrawLine(x, 0, x, vp.Height, pen)
}

// updateStatusBar publishes the date and value under the pointer
func (p *Plot) updateStatusBar(x, y int) {
	i := p.viewport().XToIndex(x, p.bars.Count())
	bar := p.bars.Bar(i)

	p.listener.StatusMessage(fmt.Sprintf("%s %s",
		bar.DateString(p.style.DateLayout+" "+p.style.TimeLayout),
		Strip(p.scaler.ConvertToVal(y))))
}

// Info returns the info panel record for the bar under pixel column x, or
// nil when there is nothing to describe
func (p *Plot) Info(x int) *core.Setting {
	if !p.hasBars() || p.indicator == nil {
		return nil
	}

	count := p.bars.Count()
	i := p.viewport().XToIndex(x, count)
	bar := p.bars.Bar(i)

	info := core.NewSetting()
	info.Set("D", bar.DateString(p.style.DateLayout))
	info.Set("T", bar.DateString(p.style.TimeLayout))

	trades := 0
	for _, co := range p.objects.all() {
		kind := co.Type()
		if kind != buyArrowType && kind != sellArrowType {
			continue
		}
		if !co.Date().Equal(bar.Time) {
			continue
		}

		s := co.Settings()
		side := "Buy"
		if kind == sellArrowType {
			side = "Sell"
		}
		parts := []string{side}
		if id := s.Get("Identifier"); id != "" {
			parts = append(parts, id)
		}
		if s.Get("Price") != "" {
			parts = append(parts, Strip(s.Float("Price", 0)))
		}
		trades++
		info.Set(fmt.Sprintf("Trade-%d", trades), strings.Join(parts, " "))
	}

	for _, line := range p.indicator.Lines {
		if line.Style == StyleInvisible {
			continue
		}
		li := line.Len() - count + i
		if li < 0 || li >= line.Len() {
			continue
		}
		line.Info(li, info)
	}

	return info
}
