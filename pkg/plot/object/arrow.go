package object

import (
	"image"
	"time"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// Arrow marks a trade at a bar: buy arrows point up from below the price,
// sell arrows point down from above it.
type Arrow struct {
	base
	// Identifier names the trade, usually the traded symbol
	Identifier string
}

// NewBuyArrow creates a green buy arrow
func NewBuyArrow() *Arrow {
	return &Arrow{base: newBase(TypeBuyArrow, plot.MustColor("green"))}
}

// NewSellArrow creates a red sell arrow
func NewSellArrow() *Arrow {
	return &Arrow{base: newBase(TypeSellArrow, plot.MustColor("red"))}
}

func (a *Arrow) buy() bool {
	return a.kind == TypeBuyArrow
}

func (a *Arrow) High() float64 {
	if a.unplaced() {
		return noHigh
	}
	return a.value
}

func (a *Arrow) Low() float64 {
	if a.unplaced() {
		return noLow
	}
	return a.value
}

func (a *Arrow) Draw(ctx plot.DrawContext) {
	a.resetAreas()
	if a.placing {
		return
	}

	x := ctx.XFromDate(a.date)
	if x == -1 {
		return
	}
	y := ctx.Scaler.ConvertToY(a.value)

	// tip at the price, shaft away from it
	dir := 1
	if !a.buy() {
		dir = -1
	}
	points := []image.Point{
		{X: x, Y: y},
		{X: x + 5, Y: y + 5*dir},
		{X: x + 2, Y: y + 5*dir},
		{X: x + 2, Y: y + 11*dir},
		{X: x - 2, Y: y + 11*dir},
		{X: x - 2, Y: y + 5*dir},
		{X: x - 5, Y: y + 5*dir},
	}
	ctx.Canvas.DrawPolygon(points, a.color, true)

	a.areas = append(a.areas, image.Rect(x-5, y, x+6, y+11*dir))
	a.addHandle(ctx, image.Pt(x, y))
}

func (a *Arrow) PointerClick(p image.Point, t time.Time, v float64) plot.Status {
	return a.click(p, func(int) bool {
		a.date = t
		a.value = v
		return true
	})
}

func (a *Arrow) PointerMoving(_ image.Point, t time.Time, v float64) {
	if a.status != plot.StatusMoving {
		return
	}
	a.date = t
	a.value = v
	a.moved(t, v)
}

// Settings adds Identifier and Price to the shared record
func (a *Arrow) Settings() *core.Setting {
	s := a.settings()
	s.Set("Identifier", a.Identifier)
	s.SetFloat("Price", a.value)
	return s
}

// SetSettings reads the record. Price stands in for a missing Value.
func (a *Arrow) SetSettings(s *core.Setting) error {
	if err := a.apply(s); err != nil {
		return err
	}
	if _, ok := s.Lookup("Value"); !ok {
		a.value = s.Float("Price", a.value)
	}
	a.Identifier = s.Get("Identifier")
	return nil
}
