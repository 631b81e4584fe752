package plot

import (
	"image"
	"image/color"
)

// PenStyle selects the stroke pattern of a line
type PenStyle int

const (
	SolidPen PenStyle = iota
	DotPen
)

// Pen describes how a line is stroked
type Pen struct {
	Color color.RGBA
	Style PenStyle
}

// Font describes the text face used for labels
type Font struct {
	Family string
	Size   float64
}

// Canvas is the drawing capability set the renderer needs. Implementations
// own their pixels; the plot never assumes a specific graphics API.
type Canvas interface {
	Width() int
	Height() int

	// Fill paints the whole surface
	Fill(c color.RGBA)
	DrawLine(x1, y1, x2, y2 int, pen Pen)
	DrawRect(r image.Rectangle, c color.RGBA)
	FillRect(r image.Rectangle, c color.RGBA)
	DrawPolygon(points []image.Point, c color.RGBA, filled bool)
	DrawPoint(x, y int, c color.RGBA)
	// DrawText draws text with its baseline at y
	DrawText(x, y int, text string, font Font, c color.RGBA)
	MeasureText(font Font, text string) (width, height int)
}

// SurfaceFactory creates the off-screen canvas of the given size. The plot
// calls it on every resize and drops the previous surface.
type SurfaceFactory func(width, height int) (Canvas, error)

// textBox returns the bounds of text drawn with its top-left corner at (x, top)
func textBox(c Canvas, font Font, x, top int, text string) image.Rectangle {
	w, h := c.MeasureText(font, text)
	return image.Rect(x, top, x+w, top+h)
}

// DrawLabel draws text inside an opaque box whose top-left corner is (x, top).
// The box is outlined when border is true. It returns the box bounds.
func DrawLabel(c Canvas, font Font, x, top int, text string, fg, bg color.RGBA, border bool) image.Rectangle {
	box := textBox(c, font, x, top, text)
	c.FillRect(box, bg)
	c.DrawText(box.Min.X, box.Max.Y-descent(box.Dy()), text, font, fg)
	if border {
		c.DrawRect(box, fg)
	}
	return box
}

// descent approximates the space below the baseline for a line of height h
func descent(h int) int {
	return h / 5
}
