package object

import (
	"image"
	"time"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// Text is a free label anchored at (date, value)
type Text struct {
	base
	Label string
	Font  plot.Font
}

// NewText creates a white "Text" label using the plot font
func NewText() *Text {
	return &Text{
		base:  newBase(TypeText, plot.MustColor("white")),
		Label: "Text",
	}
}

func (o *Text) High() float64 {
	if o.unplaced() {
		return noHigh
	}
	return o.value
}

func (o *Text) Low() float64 {
	if o.unplaced() {
		return noLow
	}
	return o.value
}

func (o *Text) font(ctx plot.DrawContext) plot.Font {
	if o.Font.Size > 0 {
		return o.Font
	}
	return ctx.Style.Font
}

func (o *Text) Draw(ctx plot.DrawContext) {
	o.resetAreas()
	if o.placing {
		return
	}

	x := ctx.XFromDate(o.date)
	if x == -1 {
		return
	}
	y := ctx.Scaler.ConvertToY(o.value)

	font := o.font(ctx)
	ctx.Canvas.DrawText(x, y, o.Label, font, o.color)

	w, h := ctx.Canvas.MeasureText(font, o.Label)
	o.areas = append(o.areas, image.Rect(x, y-h, x+w, y))
	o.addHandle(ctx, image.Pt(x, y))
}

func (o *Text) PointerClick(p image.Point, t time.Time, v float64) plot.Status {
	return o.click(p, func(int) bool {
		o.date = t
		o.value = v
		return true
	})
}

func (o *Text) PointerMoving(_ image.Point, t time.Time, v float64) {
	if o.status != plot.StatusMoving {
		return
	}
	o.date = t
	o.value = v
	o.moved(t, v)
}

func (o *Text) Settings() *core.Setting {
	s := o.settings()
	s.Set("Label", o.Label)
	if o.Font.Size > 0 {
		s.Set("FontFamily", o.Font.Family)
		s.SetFloat("FontSize", o.Font.Size)
	}
	return s
}

func (o *Text) SetSettings(s *core.Setting) error {
	if err := o.apply(s); err != nil {
		return err
	}
	if label, ok := s.Lookup("Label"); ok {
		o.Label = label
	}
	o.Font.Family = s.Get("FontFamily")
	o.Font.Size = s.Float("FontSize", 0)
	return nil
}
