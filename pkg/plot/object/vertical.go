package object

import (
	"image"
	"time"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// VerticalLine is a full-height line at a bar
type VerticalLine struct {
	base
}

// NewVerticalLine creates a red vertical line
func NewVerticalLine() *VerticalLine {
	return &VerticalLine{base: newBase(TypeVerticalLine, plot.MustColor("red"))}
}

func (l *VerticalLine) High() float64 { return noHigh }
func (l *VerticalLine) Low() float64  { return noLow }

func (l *VerticalLine) Draw(ctx plot.DrawContext) {
	l.resetAreas()
	if l.placing {
		return
	}

	x := ctx.XFromDate(l.date)
	if x == -1 {
		return
	}

	height := ctx.Canvas.Height()
	ctx.Canvas.DrawLine(x, 0, x, height, plot.Pen{Color: l.color})

	l.addSegment(image.Pt(x, 0), image.Pt(x, height))
	l.addHandle(ctx, image.Pt(x, height/2))
}

func (l *VerticalLine) PointerClick(p image.Point, t time.Time, v float64) plot.Status {
	return l.click(p, func(int) bool {
		l.date = t
		l.value = v
		return true
	})
}

func (l *VerticalLine) PointerMoving(_ image.Point, t time.Time, v float64) {
	if l.status != plot.StatusMoving {
		return
	}
	l.date = t
	l.moved(t, v)
}

func (l *VerticalLine) Settings() *core.Setting {
	return l.settings()
}

func (l *VerticalLine) SetSettings(s *core.Setting) error {
	return l.apply(s)
}
