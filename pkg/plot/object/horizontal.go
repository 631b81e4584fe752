package object

import (
	"image"
	"time"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// HorizontalLine is a full-width line at a value, labelled with the value
// or with its own text
type HorizontalLine struct {
	base
	Label string
}

// NewHorizontalLine creates a red horizontal line
func NewHorizontalLine() *HorizontalLine {
	return &HorizontalLine{base: newBase(TypeHorizontalLine, plot.MustColor("red"))}
}

func (h *HorizontalLine) High() float64 {
	if h.unplaced() {
		return noHigh
	}
	return h.value
}

func (h *HorizontalLine) Low() float64 {
	if h.unplaced() {
		return noLow
	}
	return h.value
}

func (h *HorizontalLine) Draw(ctx plot.DrawContext) {
	h.resetAreas()
	if h.placing {
		return
	}

	y := ctx.Scaler.ConvertToY(h.value)
	width := ctx.Canvas.Width()
	ctx.Canvas.DrawLine(0, y, width, y, plot.Pen{Color: h.color})

	text := plot.Strip(h.value)
	if h.Label != "" {
		text = h.Label + " " + text
	}
	ctx.Canvas.DrawText(ctx.Style.StartX, y-1, text, ctx.Style.Font, h.color)

	h.addSegment(image.Pt(0, y), image.Pt(width, y))
	h.addHandle(ctx, image.Pt(handleSize/2, y))
	h.addHandle(ctx, image.Pt(width-handleSize/2, y))
}

func (h *HorizontalLine) PointerClick(p image.Point, t time.Time, v float64) plot.Status {
	return h.click(p, func(int) bool {
		h.date = t
		h.value = v
		return true
	})
}

func (h *HorizontalLine) PointerMoving(_ image.Point, t time.Time, v float64) {
	if h.status != plot.StatusMoving {
		return
	}
	h.value = v
	h.moved(t, v)
}

func (h *HorizontalLine) Settings() *core.Setting {
	s := h.settings()
	s.Set("Label", h.Label)
	return s
}

func (h *HorizontalLine) SetSettings(s *core.Setting) error {
	if err := h.apply(s); err != nil {
		return err
	}
	h.Label = s.Get("Label")
	return nil
}
