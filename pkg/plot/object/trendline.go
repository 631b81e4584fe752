package object

import (
	"image"
	"math"
	"time"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// TrendLine joins two (date, value) points, optionally extended to the
// right edge of the surface
type TrendLine struct {
	base
	date2  time.Time
	value2 float64
	Extend bool
}

// NewTrendLine creates a red trend line
func NewTrendLine() *TrendLine {
	return &TrendLine{base: newBase(TypeTrendLine, plot.MustColor("red"))}
}

func (l *TrendLine) High() float64 {
	if l.unplaced() {
		return noHigh
	}
	return math.Max(l.value, l.value2)
}

func (l *TrendLine) Low() float64 {
	if l.unplaced() {
		return noLow
	}
	return math.Min(l.value, l.value2)
}

// End returns the second anchor
func (l *TrendLine) End() (time.Time, float64) {
	return l.date2, l.value2
}

func (l *TrendLine) Draw(ctx plot.DrawContext) {
	l.resetAreas()
	if l.placing && l.step == 0 {
		return
	}

	x1 := ctx.XFromDate(l.date)
	x2 := ctx.XFromDate(l.date2)
	if x1 == -1 || x2 == -1 {
		return
	}
	y1 := ctx.Scaler.ConvertToY(l.value)
	y2 := ctx.Scaler.ConvertToY(l.value2)

	end := image.Pt(x2, y2)
	if l.Extend && x2 > x1 {
		width := ctx.Canvas.Width()
		end = image.Pt(width, y2+(y2-y1)*(width-x2)/(x2-x1))
	}

	ctx.Canvas.DrawLine(x1, y1, end.X, end.Y, plot.Pen{Color: l.color})

	l.addSegment(image.Pt(x1, y1), end)
	l.addHandle(ctx, image.Pt(x1, y1))
	l.addHandle(ctx, image.Pt(x2, y2))
}

func (l *TrendLine) PointerClick(p image.Point, t time.Time, v float64) plot.Status {
	return l.click(p, func(step int) bool {
		if step == 0 {
			l.date, l.value = t, v
			l.date2, l.value2 = t, v
			l.host.Message("Select TrendLine ending point...")
			return false
		}
		l.date2, l.value2 = t, v
		return true
	})
}

func (l *TrendLine) PointerMoving(_ image.Point, t time.Time, v float64) {
	if l.placing {
		if l.step == 1 {
			l.date2, l.value2 = t, v
			l.host.Redraw()
		}
		return
	}

	if l.status != plot.StatusMoving {
		return
	}
	if l.handle == 0 {
		l.date, l.value = t, v
	} else {
		l.date2, l.value2 = t, v
	}
	l.moved(t, v)
}

func (l *TrendLine) Settings() *core.Setting {
	s := l.settings()
	if !l.date2.IsZero() {
		s.SetTime("Date2", l.date2)
	}
	s.SetFloat("Value2", l.value2)
	s.SetBool("Extend", l.Extend)
	return s
}

func (l *TrendLine) SetSettings(s *core.Setting) error {
	if err := l.apply(s); err != nil {
		return err
	}
	if t, ok := s.Time("Date2"); ok {
		l.date2 = t
	}
	l.value2 = s.Float("Value2", l.value2)
	l.Extend = s.Bool("Extend", l.Extend)
	return nil
}
