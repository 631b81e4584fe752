// Package canvas implements plot.Canvas on top of the go-chart raster
// renderer so charts can be drawn off screen and saved as PNG.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/raykavin/chartplot/pkg/plot"
)

const defaultFontSize = 9

// dash pattern used for plot.DotPen
var dotted = []float64{2, 2}

// Surface is a raster plot.Canvas
type Surface struct {
	r      chart.Renderer
	width  int
	height int
}

// New creates a raster surface of the given size
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, fmt.Errorf("error creating renderer: %w", err)
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("error loading font: %w", err)
	}
	r.SetFont(font)

	return &Surface{r: r, width: width, height: height}, nil
}

// Factory is a plot.SurfaceFactory creating raster surfaces
func Factory(width, height int) (plot.Canvas, error) {
	s, err := New(width, height)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Save encodes the surface as PNG
func (s *Surface) Save(w io.Writer) error {
	if err := s.r.Save(w); err != nil {
		return fmt.Errorf("error encoding png: %w", err)
	}
	return nil
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

func (s *Surface) Fill(c color.RGBA) {
	s.FillRect(image.Rect(0, 0, s.width, s.height), c)
}

func (s *Surface) DrawLine(x1, y1, x2, y2 int, pen plot.Pen) {
	s.stroke(pen.Color)
	if pen.Style == plot.DotPen {
		s.r.SetStrokeDashArray(dotted)
	}

	s.r.MoveTo(x1, y1)
	s.r.LineTo(x2, y2)
	s.r.Stroke()
}

func (s *Surface) DrawRect(r image.Rectangle, c color.RGBA) {
	s.stroke(c)
	s.path(corners(r))
	s.r.Stroke()
}

func (s *Surface) FillRect(r image.Rectangle, c color.RGBA) {
	s.fill(c)
	s.path(corners(r))
	s.r.Fill()
}

func (s *Surface) DrawPolygon(points []image.Point, c color.RGBA, filled bool) {
	if len(points) < 2 {
		return
	}

	if filled {
		s.fill(c)
		s.r.SetStrokeColor(toDrawing(c))
		s.r.SetStrokeWidth(1)
		s.path(points)
		s.r.FillStroke()
		return
	}

	s.stroke(c)
	s.path(points)
	s.r.Stroke()
}

func (s *Surface) DrawPoint(x, y int, c color.RGBA) {
	s.FillRect(image.Rect(x, y, x+1, y+1), c)
}

func (s *Surface) DrawText(x, y int, text string, font plot.Font, c color.RGBA) {
	s.r.ResetStyle()
	s.font(font)
	s.r.SetFontColor(toDrawing(c))
	s.r.Text(text, x, y)
}

func (s *Surface) MeasureText(font plot.Font, text string) (width, height int) {
	s.font(font)
	box := s.r.MeasureText(text)
	return box.Width(), box.Height()
}

func (s *Surface) font(font plot.Font) {
	size := font.Size
	if size <= 0 {
		size = defaultFontSize
	}
	s.r.SetFontSize(size)
}

func (s *Surface) stroke(c color.RGBA) {
	s.r.ResetStyle()
	s.r.SetStrokeColor(toDrawing(c))
	s.r.SetStrokeWidth(1)
}

func (s *Surface) fill(c color.RGBA) {
	s.r.ResetStyle()
	s.r.SetFillColor(toDrawing(c))
}

// path traces a closed path through points
func (s *Surface) path(points []image.Point) {
	s.r.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.r.LineTo(p.X, p.Y)
	}
	s.r.Close()
}

func corners(r image.Rectangle) []image.Point {
	return []image.Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}

func toDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
