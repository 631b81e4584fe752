package object

import (
	"image"
	"math"
	"time"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

const (
	// DefaultCycleInterval is the cycle length in bars of a new marker
	DefaultCycleInterval = 10
	arcSegments          = 16
)

// Cycle draws repeating half-ellipse arcs along the bottom edge, one per
// Interval bars, phased on its anchor date
type Cycle struct {
	base
	Interval int

	bars plot.BarSeries
}

// NewCycle creates a red cycle marker
func NewCycle() *Cycle {
	return &Cycle{
		base:     newBase(TypeCycle, plot.MustColor("red")),
		Interval: DefaultCycleInterval,
	}
}

func (c *Cycle) High() float64 { return noHigh }
func (c *Cycle) Low() float64  { return noLow }

func (c *Cycle) Draw(ctx plot.DrawContext) {
	c.resetAreas()
	c.bars = ctx.Bars
	if c.placing {
		return
	}

	origin := ctx.XFromDate(c.date)
	w := c.Interval * ctx.Viewport.Pixelspace
	if origin == -1 || w <= 0 {
		return
	}

	width, height := ctx.Canvas.Width(), ctx.Canvas.Height()

	start := origin
	for start > 0 {
		start -= w
	}
	for ; start < width; start += w {
		c.drawArc(ctx, start, w, height)
	}

	c.addHandle(ctx, image.Pt(origin, height-handleSize))
	c.addHandle(ctx, image.Pt(origin+w, height-handleSize))
}

// drawArc draws the upper half of an ellipse spanning [x, x+w] on the baseline
func (c *Cycle) drawArc(ctx plot.DrawContext, x, w, baseline int) {
	rx, ry := float64(w)/2, float64(w)/4
	cx := float64(x) + rx

	pen := plot.Pen{Color: c.color}
	prev := image.Pt(x, baseline)
	for i := 1; i <= arcSegments; i++ {
		a := math.Pi * float64(i) / arcSegments
		p := image.Pt(
			int(math.Round(cx-rx*math.Cos(a))),
			baseline-int(math.Round(ry*math.Sin(a))),
		)
		ctx.Canvas.DrawLine(prev.X, prev.Y, p.X, p.Y, pen)
		c.addSegment(prev, p)
		prev = p
	}
}

func (c *Cycle) PointerClick(p image.Point, t time.Time, v float64) plot.Status {
	return c.click(p, func(int) bool {
		c.date = t
		c.value = v
		return true
	})
}

// PointerMoving moves the anchor with the first handle and resizes the
// interval with the second
func (c *Cycle) PointerMoving(_ image.Point, t time.Time, v float64) {
	if c.status != plot.StatusMoving {
		return
	}

	if c.handle == 0 {
		c.date = t
		c.moved(t, v)
		return
	}

	if c.bars == nil {
		return
	}
	from, to := c.bars.Index(c.date), c.bars.Index(t)
	if from == core.NotFound || to == core.NotFound || to <= from {
		return
	}
	c.Interval = to - from
	c.moved(t, v)
}

func (c *Cycle) Settings() *core.Setting {
	s := c.settings()
	s.SetInt("Interval", c.Interval)
	return s
}

func (c *Cycle) SetSettings(s *core.Setting) error {
	if err := c.apply(s); err != nil {
		return err
	}
	c.Interval = max(s.Int("Interval", c.Interval), 1)
	return nil
}
