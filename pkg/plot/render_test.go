package plot_test

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/logger/zerolog"
	"github.com/raykavin/chartplot/pkg/plot"
	"github.com/raykavin/chartplot/pkg/plot/plottest"
)

var (
	orange = plot.MustColor("orange")
	green  = plot.MustColor("green")
	red    = plot.MustColor("red")
	blue   = plot.MustColor("blue")
)

func testBars(n int) *core.Bars {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]core.Bar, n)
	for i := range bars {
		v := float64(i + 1)
		bars[i] = core.Bar{Time: start.AddDate(0, 0, i), Open: v, High: v, Low: v, Close: v, Volume: 100}
	}
	return core.NewBars(bars)
}

func newTestPlot(t *testing.T, style plot.Style, lines ...*plot.PlotLine) (*plot.Plot, *plottest.Listener) {
	t.Helper()

	listener := &plottest.Listener{}
	p := plot.NewPlot(zerolog.Nop(), plottest.Surfaces,
		plot.WithStyle(style),
		plot.WithListener(listener),
	)
	p.SetData(testBars(10))
	p.SetIndicator(plot.NewIndicator("test", lines...))
	require.NoError(t, p.Resize(600, 100))
	return p, listener
}

func plainStyle() plot.Style {
	style := plot.DefaultStyle()
	style.GridLines = false
	return style
}

func surface(p *plot.Plot) *plottest.Canvas {
	return p.Surface().(*plottest.Canvas)
}

func ops(p *plot.Plot, kind string, c color.RGBA) []plottest.Op {
	var out []plottest.Op
	for _, op := range surface(p).Filter(kind) {
		if op.Color == c {
			out = append(out, op)
		}
	}
	return out
}

func segments(list []plottest.Op) [][]image.Point {
	var out [][]image.Point
	for _, op := range list {
		out = append(out, op.Points)
	}
	return out
}

func seg(x1, y1, x2, y2 int) []image.Point {
	return []image.Point{image.Pt(x1, y1), image.Pt(x2, y2)}
}

func valueLine(style plot.LineStyle, label string, values ...float64) *plot.PlotLine {
	line := plot.NewPlotLine(style, label, orange)
	line.AppendValues(values...)
	return line
}

func TestRender_Line(t *testing.T) {
	p, _ := newTestPlot(t, plainStyle(), valueLine(plot.StyleLine, "MA", 1, 2, 3))

	lines := ops(p, plottest.OpLine, orange)
	assert.Equal(t, [][]image.Point{seg(44, 100, 50, 50), seg(50, 50, 56, 0)}, segments(lines))
	assert.Equal(t, plot.SolidPen, lines[0].Pen.Style)
}

func TestRender_Dash(t *testing.T) {
	p, _ := newTestPlot(t, plainStyle(), valueLine(plot.StyleDash, "MA", 1, 2, 3))

	lines := ops(p, plottest.OpLine, orange)
	require.Len(t, lines, 2)
	assert.Equal(t, plot.DotPen, lines[0].Pen.Style)
}

func TestRender_DotRightAligned(t *testing.T) {
	p, _ := newTestPlot(t, plainStyle(), valueLine(plot.StyleDot, "MA", 1, 2, 3))

	// three samples against ten bars land on bars 7, 8 and 9
	assert.Equal(t, [][]image.Point{
		{image.Pt(44, 100)},
		{image.Pt(50, 50)},
		{image.Pt(56, 0)},
	}, segments(ops(p, plottest.OpPoint, orange)))
}

func TestRender_Histogram(t *testing.T) {
	p, _ := newTestPlot(t, plainStyle(), valueLine(plot.StyleHistogram, "H", 1, 2, 3))

	polygons := ops(p, plottest.OpPolygon, orange)
	require.Len(t, polygons, 2)
	assert.True(t, polygons[0].Filled)
	assert.Equal(t, []image.Point{{44, 150}, {44, 100}, {50, 50}, {50, 150}}, polygons[0].Points)
}

func TestRender_HistogramBar(t *testing.T) {
	line := valueLine(plot.StyleHistogramBar, "Vol", 1, 2, 3)
	p, _ := newTestPlot(t, plainStyle(), line)

	rects := ops(p, plottest.OpFillRect, orange)
	require.Len(t, rects, 3)
	assert.Equal(t, image.Rect(44, 100, 49, 150), rects[0].Rect)
	assert.Equal(t, image.Rect(56, 0, 61, 150), rects[2].Rect)

	colored := plot.NewPlotLine(plot.StyleHistogramBar, "Vol", orange)
	colored.ColorBars = true
	colored.AppendSample(plot.Sample{Value: 1, Color: green})
	colored.AppendSample(plot.Sample{Value: 2, Color: red})
	p, _ = newTestPlot(t, plainStyle(), colored)

	assert.Len(t, ops(p, plottest.OpFillRect, green), 1)
	assert.Len(t, ops(p, plottest.OpFillRect, red), 1)
	assert.Empty(t, ops(p, plottest.OpFillRect, orange))
}

func TestRender_Horizontal(t *testing.T) {
	p, _ := newTestPlot(t, plainStyle(), valueLine(plot.StyleHorizontal, "RSI", 5))

	assert.Equal(t, [][]image.Point{seg(0, 50, 600, 50)}, segments(ops(p, plottest.OpLine, orange)))
	assert.Contains(t, surface(p).Texts(), "RSI=5.00")
	assert.Len(t, ops(p, plottest.OpRect, orange), 1)
}

func TestRender_Bar(t *testing.T) {
	line := plot.NewPlotLine(plot.StyleBar, "price", orange)
	line.AppendBar(green, 10, 12, 8, 11, false)
	p, _ := newTestPlot(t, plainStyle(), line)

	assert.Equal(t, [][]image.Point{
		seg(54, 50, 56, 50),
		seg(58, 25, 56, 25),
		seg(56, 0, 56, 100),
	}, segments(ops(p, plottest.OpLine, green)))
}

func candleLine() *plot.PlotLine {
	line := plot.NewPlotLine(plot.StyleCandle, "price", orange)
	line.AppendBar(green, 10, 12, 8, 9, true)
	line.AppendBar(red, 9, 12, 8, 11, false)
	line.AppendBar(blue, 10, 12, 8, 10, false)
	return line
}

func TestRender_Candle(t *testing.T) {
	p, _ := newTestPlot(t, plainStyle(), candleLine())

	// filled body with a single wick
	assert.Equal(t, [][]image.Point{seg(44, 0, 44, 100)}, segments(ops(p, plottest.OpLine, green)))
	filled := ops(p, plottest.OpFillRect, green)
	require.Len(t, filled, 1)
	assert.Equal(t, image.Rect(42, 50, 47, 75), filled[0].Rect)

	// outlined body with split wicks
	assert.Equal(t, [][]image.Point{seg(50, 0, 50, 25), seg(50, 75, 50, 100)},
		segments(ops(p, plottest.OpLine, red)))
	outlined := ops(p, plottest.OpRect, red)
	require.Len(t, outlined, 1)
	assert.Equal(t, image.Rect(48, 25, 53, 75), outlined[0].Rect)

	// open == close draws a flat tick
	assert.Equal(t, [][]image.Point{seg(56, 0, 56, 50), seg(56, 50, 56, 100), seg(54, 50, 58, 50)},
		segments(ops(p, plottest.OpLine, blue)))
	assert.Empty(t, ops(p, plottest.OpRect, blue))
}

func TestRender_PointAndFigure(t *testing.T) {
	line := plot.NewPlotLine(plot.StylePF, "PF", orange)
	line.AppendSample(plot.Sample{Low: 10, High: 12, Box: 1, Filled: true, Color: green})
	line.AppendSample(plot.Sample{Low: 10, High: 11, Box: 1, Color: red})
	line.AppendSample(plot.Sample{Low: 10, High: 11, Color: red})
	p, _ := newTestPlot(t, plainStyle(), line)

	var crosses, noughts int
	for _, text := range surface(p).Texts() {
		switch text {
		case "X":
			crosses++
		case "O":
			noughts++
		}
	}
	assert.Equal(t, 3, crosses)
	assert.Equal(t, 2, noughts)

	// the resolved high gets two percent of headroom
	assert.InDelta(t, 12.24, p.Scaler().High(), 1e-9)
	assert.Equal(t, 10.0, p.Scaler().Low())
}

func TestRender_SkipsEmptyAndDisabled(t *testing.T) {
	p, listener := newTestPlot(t, plainStyle(),
		plot.NewPlotLine(plot.StyleLine, "empty", orange),
		valueLine(plot.StyleDot, "MA", 1, 2),
	)
	assert.Len(t, ops(p, plottest.OpPoint, orange), 2)

	p.Indicator().Enabled = false
	surface(p).Reset()
	p.Draw()
	assert.Empty(t, ops(p, plottest.OpPoint, orange))
	assert.Equal(t, 2, listener.Draws)
}

func TestRender_Header(t *testing.T) {
	p, _ := newTestPlot(t, plainStyle(), candleLine())

	texts := surface(p).Texts()
	require.GreaterOrEqual(t, len(texts), 3)
	assert.Equal(t, "2024-01-10 ", texts[0])
	assert.Equal(t, "CH=-1.00 (-9.09%) ", texts[1])
	assert.Equal(t, "O=10.00 H=12.00 L=8.00 C=10.00 ", texts[2])
	assert.Len(t, ops(p, plottest.OpText, plot.DefaultStyle().Down), 1)

	p, _ = newTestPlot(t, plainStyle(), valueLine(plot.StyleLine, "MA", 1, 2, 3))
	assert.Equal(t, []string{"2024-01-10 ", "MA=3.00 "}, surface(p).Texts())
}

func TestRender_Grid(t *testing.T) {
	p, _ := newTestPlot(t, plot.DefaultStyle(), valueLine(plot.StyleLine, "MA", 1, 2, 3))
	grid := plot.DefaultStyle().Grid

	// y grid at the 1/2/3 ticks
	assert.Equal(t, [][]image.Point{seg(0, 100, 600, 100), seg(0, 50, 600, 50), seg(0, 0, 600, 0)},
		segments(ops(p, plottest.OpLine, grid)))

	p.SetXGrid([]int{0, 5})
	surface(p).Reset()
	p.Draw()
	lines := ops(p, plottest.OpLine, grid)
	require.Len(t, lines, 5)
	assert.Equal(t, seg(2, 0, 2, 100), lines[0].Points)
	assert.Equal(t, seg(32, 0, 32, 100), lines[1].Points)
	assert.Equal(t, plot.DotPen, lines[0].Pen.Style)

	p.SetIndex(3)
	surface(p).Reset()
	p.Draw()
	assert.Len(t, ops(p, plottest.OpLine, grid), 4)

	p.SetGridFlag(false)
	surface(p).Reset()
	p.Draw()
	assert.Empty(t, ops(p, plottest.OpLine, grid))
}

func TestPlot_DrawOrder(t *testing.T) {
	factory := &plottest.Factory{}
	listener := &plottest.Listener{}
	p := plot.NewPlot(zerolog.Nop(), plottest.Surfaces,
		plot.WithStyle(plainStyle()),
		plot.WithListener(listener),
		plot.WithObjectFactory(factory),
	)

	require.NoError(t, p.Resize(600, 100))
	canvas := surface(p)
	assert.Equal(t, []plottest.Op{{Kind: plottest.OpFill, Color: plot.DefaultStyle().Background}}, canvas.Ops)
	assert.Equal(t, 1, listener.Draws)

	p.SetData(testBars(10))
	p.SetIndicator(plot.NewIndicator("test", valueLine(plot.StyleLine, "MA", 1, 2, 3)))

	s := core.NewSetting()
	s.Set("Name", "AAPL-1")
	s.Set("Type", "TrendLine")
	require.NoError(t, p.AddChartObject(s))

	canvas.Reset()
	p.Draw()
	assert.Equal(t, plottest.OpFill, canvas.Ops[0].Kind)
	assert.Equal(t, 1, factory.Made[0].Draws)
	require.Len(t, listener.Presented, 2)
	assert.Same(t, canvas, listener.Presented[1])
}

func TestPlot_Resize(t *testing.T) {
	p := plot.NewPlot(zerolog.Nop(), plottest.Surfaces)
	assert.Error(t, p.Resize(0, 100))
	assert.Zero(t, p.Width())

	require.NoError(t, p.Resize(300, 200))
	assert.Equal(t, 300, p.Width())

	failing := plot.NewPlot(zerolog.Nop(), func(int, int) (plot.Canvas, error) {
		return nil, errors.New("out of memory")
	})
	err := failing.Resize(10, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of memory")
}
