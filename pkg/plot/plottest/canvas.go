// Package plottest provides recording doubles for the plot package: a canvas
// that keeps every drawing call, a listener that keeps every notification
// and a scripted chart object.
package plottest

import (
	"image"
	"image/color"

	"github.com/raykavin/chartplot/pkg/plot"
)

// Op kinds recorded by Canvas
const (
	OpFill     = "fill"
	OpLine     = "line"
	OpRect     = "rect"
	OpFillRect = "fillrect"
	OpPolygon  = "polygon"
	OpPoint    = "point"
	OpText     = "text"
)

// Op is one recorded drawing call
type Op struct {
	Kind   string
	Points []image.Point
	Rect   image.Rectangle
	Color  color.RGBA
	Pen    plot.Pen
	Filled bool
	Text   string
}

// Canvas records drawing calls instead of painting pixels. Text is measured
// with a fixed cell of CharWidth x LineHeight pixels.
type Canvas struct {
	W, H       int
	CharWidth  int
	LineHeight int
	Ops        []Op
}

// NewCanvas creates an empty recording canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{W: width, H: height, CharWidth: 6, LineHeight: 12}
}

// Surfaces is a plot.SurfaceFactory producing recording canvases
func Surfaces(width, height int) (plot.Canvas, error) {
	return NewCanvas(width, height), nil
}

func (c *Canvas) Width() int  { return c.W }
func (c *Canvas) Height() int { return c.H }

func (c *Canvas) Fill(col color.RGBA) {
	c.Ops = append(c.Ops, Op{Kind: OpFill, Color: col})
}

func (c *Canvas) DrawLine(x1, y1, x2, y2 int, pen plot.Pen) {
	c.Ops = append(c.Ops, Op{
		Kind:   OpLine,
		Points: []image.Point{image.Pt(x1, y1), image.Pt(x2, y2)},
		Color:  pen.Color,
		Pen:    pen,
	})
}

func (c *Canvas) DrawRect(r image.Rectangle, col color.RGBA) {
	c.Ops = append(c.Ops, Op{Kind: OpRect, Rect: r, Color: col})
}

func (c *Canvas) FillRect(r image.Rectangle, col color.RGBA) {
	c.Ops = append(c.Ops, Op{Kind: OpFillRect, Rect: r, Color: col, Filled: true})
}

func (c *Canvas) DrawPolygon(points []image.Point, col color.RGBA, filled bool) {
	c.Ops = append(c.Ops, Op{
		Kind:   OpPolygon,
		Points: append([]image.Point(nil), points...),
		Color:  col,
		Filled: filled,
	})
}

func (c *Canvas) DrawPoint(x, y int, col color.RGBA) {
	c.Ops = append(c.Ops, Op{Kind: OpPoint, Points: []image.Point{image.Pt(x, y)}, Color: col})
}

func (c *Canvas) DrawText(x, y int, text string, _ plot.Font, col color.RGBA) {
	c.Ops = append(c.Ops, Op{Kind: OpText, Points: []image.Point{image.Pt(x, y)}, Color: col, Text: text})
}

func (c *Canvas) MeasureText(_ plot.Font, text string) (int, int) {
	return len(text) * c.CharWidth, c.LineHeight
}

// Reset drops the recorded calls
func (c *Canvas) Reset() {
	c.Ops = nil
}

// Filter returns the recorded calls of one kind in call order
func (c *Canvas) Filter(kind string) []Op {
	var out []Op
	for _, op := range c.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Count returns how many calls of one kind were recorded
func (c *Canvas) Count(kind string) int {
	return len(c.Filter(kind))
}

// Texts returns every drawn string in call order
func (c *Canvas) Texts() []string {
	var out []string
	for _, op := range c.Filter(OpText) {
		out = append(out, op.Text)
	}
	return out
}
