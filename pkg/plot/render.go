package plot

import "image"

// renderer draws the lines of an indicator for one frame
type renderer struct {
	canvas   Canvas
	scaler   Scaler
	viewport Viewport
	barCount int
	style    Style
}

// drawLines dispatches every non-empty line to its draw primitive in order
func (r renderer) drawLines(ind *Indicator) {
	if ind == nil || !ind.Enabled {
		return
	}

	for _, line := range ind.Lines {
		if line.Len() == 0 {
			continue
		}
		r.drawLine(line)
	}
}

func (r renderer) drawLine(line *PlotLine) {
	switch line.Style {
	case StyleHistogram:
		r.drawHistogram(line)
	case StyleHistogramBar:
		r.drawHistogramBar(line)
	case StyleDot:
		r.drawDot(line)
	case StyleLine, StyleDash:
		r.drawPolyline(line)
	case StyleHorizontal:
		r.drawHorizontal(line)
	case StyleBar:
		r.drawBar(line)
	case StyleCandle:
		r.drawCandle(line)
	case StylePF:
		r.drawPF(line)
	}
}

func (r renderer) columns(line *PlotLine, fn func(x, sample int)) {
	r.viewport.Columns(line.Len(), r.barCount, fn)
}

func (r renderer) drawPolyline(line *PlotLine) {
	pen := Pen{Color: line.Color, Style: SolidPen}
	if line.Style == StyleDash {
		pen.Style = DotPen
	}

	scale := lineScaler(r.scaler, line)
	var prev *image.Point
	r.columns(line, func(x, i int) {
		p := image.Pt(x, scale.ConvertToY(line.Value(i)))
		if prev != nil {
			r.canvas.DrawLine(prev.X, prev.Y, p.X, p.Y, pen)
		}
		prev = &p
	})
}

func (r renderer) drawDot(line *PlotLine) {
	scale := lineScaler(r.scaler, line)
	r.columns(line, func(x, i int) {
		r.canvas.DrawPoint(x, scale.ConvertToY(line.Value(i)), line.Color)
	})
}

// drawHistogram fills the band between consecutive samples and the zero line
func (r renderer) drawHistogram(line *PlotLine) {
	scale := lineScaler(r.scaler, line)
	zero := scale.ConvertToY(0)

	var prev *image.Point
	r.columns(line, func(x, i int) {
		p := image.Pt(x, scale.ConvertToY(line.Value(i)))
		if prev != nil {
			r.canvas.DrawPolygon([]image.Point{
				{X: prev.X, Y: zero},
				*prev,
				p,
				{X: p.X, Y: zero},
			}, line.Color, true)
		}
		prev = &p
	})
}

func (r renderer) drawHistogramBar(line *PlotLine) {
	scale := lineScaler(r.scaler, line)
	zero := scale.ConvertToY(0)
	width := r.viewport.Pixelspace - 1

	r.columns(line, func(x, i int) {
		c := line.Color
		if line.ColorBars {
			c = line.Sample(i).Color
		}
		y := scale.ConvertToY(line.Value(i))
		r.canvas.FillRect(image.Rect(x, y, x+width, zero), c)
	})
}

// drawHorizontal draws one full-width line at the last value with a boxed
// label=value tag near the left margin
func (r renderer) drawHorizontal(line *PlotLine) {
	scale := lineScaler(r.scaler, line)
	value := line.Last().Value
	y := scale.ConvertToY(value)

	r.canvas.DrawLine(0, y, r.viewport.Width, y, Pen{Color: line.Color})

	text := line.Label + "=" + Strip(value)
	_, h := r.canvas.MeasureText(r.style.Font, text)
	DrawLabel(r.canvas, r.style.Font, r.viewport.StartX, y-h/2, text, line.Color, r.style.Background, true)
}

// drawBar draws the OHLC glyph: open tick left, close tick right, high-low stem
func (r renderer) drawBar(line *PlotLine) {
	scale := lineScaler(r.scaler, line)
	r.columns(line, func(x, i int) {
		s := line.Sample(i)
		pen := Pen{Color: s.Color}

		y := scale.ConvertToY(s.Open)
		r.canvas.DrawLine(x-2, y, x, y, pen)

		y = scale.ConvertToY(s.Close)
		r.canvas.DrawLine(x+2, y, x, y, pen)

		r.canvas.DrawLine(x, scale.ConvertToY(s.High), x, scale.ConvertToY(s.Low), pen)
	})
}

// drawCandle draws a candle body with wicks. Filled samples get a solid body
// from open to close and a single high-low wick; the others get an outlined
// body with a wick above the close and below the open. Equal open and close
// draw a flat tick.
func (r renderer) drawCandle(line *PlotLine) {
	scale := lineScaler(r.scaler, line)
	r.columns(line, func(x, i int) {
		s := line.Sample(i)
		pen := Pen{Color: s.Color}

		yh := scale.ConvertToY(s.High)
		yl := scale.ConvertToY(s.Low)
		yc := scale.ConvertToY(s.Close)
		yo := scale.ConvertToY(s.Open)

		if !s.Filled {
			r.canvas.DrawLine(x, yh, x, yc, pen)
			r.canvas.DrawLine(x, yo, x, yl, pen)
		} else {
			r.canvas.DrawLine(x, yh, x, yl, pen)
		}

		switch {
		case yc == yo:
			r.canvas.DrawLine(x-2, yo, x+2, yo, pen)
		case s.Filled:
			r.canvas.FillRect(image.Rect(x-2, yo, x+3, yc), s.Color)
		default:
			r.canvas.DrawRect(image.Rect(x-2, yc, x+3, yo), s.Color)
		}
	})
}

// drawPF stamps X (filled column) or O at every box between low and high
func (r renderer) drawPF(line *PlotLine) {
	scale := lineScaler(r.scaler, line)
	r.columns(line, func(x, i int) {
		s := line.Sample(i)
		if s.Box <= 0 {
			return
		}

		glyph := "O"
		if s.Filled {
			glyph = "X"
		}

		for v := s.Low; v <= s.High; v += s.Box {
			r.canvas.DrawText(x, scale.ConvertToY(v), glyph, r.style.Font, s.Color)
		}
	})
}
