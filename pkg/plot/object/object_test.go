package object

import (
	"image"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
	"github.com/raykavin/chartplot/pkg/plot/plottest"
)

var start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func day(i int) time.Time {
	return start.AddDate(0, 0, i)
}

// drawContext maps bar i to x = 2 + 6i and value v to y = 5(20 - v)
func drawContext() (plot.DrawContext, *plottest.Canvas) {
	bars := make([]core.Bar, 10)
	for i := range bars {
		bars[i] = core.Bar{Time: day(i), Close: float64(i)}
	}

	var scaler plot.Scaler
	scaler.Set(100, 20, 0, 1, 0, false)

	canvas := plottest.NewCanvas(600, 100)
	return plot.DrawContext{
		Canvas:   canvas,
		Scaler:   scaler,
		Viewport: plot.Viewport{StartX: 2, Pixelspace: 6, Width: 600, Height: 100},
		Bars:     core.NewBars(bars),
		Style:    plot.DefaultStyle(),
	}, canvas
}

func points(ops []plottest.Op) [][]image.Point {
	var out [][]image.Point
	for _, op := range ops {
		out = append(out, op.Points)
	}
	return out
}

func TestFactory(t *testing.T) {
	f := NewFactory()

	require.Len(t, Types(), 8)
	for _, kind := range Types() {
		co, err := f.New(kind)
		require.NoError(t, err, kind)
		assert.Equal(t, kind, co.Type())
	}

	_, err := f.New("Pitchfork")
	assert.ErrorIs(t, err, ErrUnknownType)

	s := core.NewSetting()
	s.Set("Type", "Pitchfork")
	_, err = f.Restore(s)
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestFactory_RestoreRoundTrip(t *testing.T) {
	f := NewFactory()

	for _, kind := range Types() {
		s := core.NewSetting()
		s.Set("Name", "AAPL-7")
		s.Set("Type", kind)
		s.Set("Plot", "Bars")
		s.Set("Color", "#00ff00")
		s.SetTime("Date", day(3))
		s.SetFloat("Value", 12.5)

		co, err := f.Restore(s)
		require.NoError(t, err, kind)
		assert.Equal(t, "AAPL-7", co.Name())
		assert.True(t, co.Date().Equal(day(3)))

		again, err := f.Restore(co.Settings())
		require.NoError(t, err, kind)
		assert.Equal(t, co.Settings(), again.Settings(), kind)
	}
}

func TestSetSettings_Errors(t *testing.T) {
	s := core.NewSetting()
	s.Set("Type", TypeTrendLine)
	assert.ErrorIs(t, NewText().SetSettings(s), ErrUnknownType)

	s = core.NewSetting()
	s.Set("Color", "not-a-colour")
	assert.Error(t, NewVerticalLine().SetSettings(s))
}

func TestTrendLine_Workflow(t *testing.T) {
	host := &plottest.Host{}
	line := NewTrendLine()
	line.Attach(host)

	line.NewObject("Bars", "AAPL-1")
	assert.Equal(t, "Select point to place TrendLine...", host.LastMessage())
	assert.Equal(t, "AAPL-1", line.Name())
	// nothing to scale before the first click
	assert.True(t, math.IsInf(line.High(), -1))
	assert.True(t, math.IsInf(line.Low(), 1))

	assert.Equal(t, plot.StatusSelected, line.PointerClick(image.Pt(20, 50), day(3), 10))
	assert.Equal(t, "Select TrendLine ending point...", host.LastMessage())

	// rubber band follows the pointer
	redraws := host.Redraws
	line.PointerMoving(image.Pt(38, 25), day(6), 15)
	date2, value2 := line.End()
	assert.True(t, date2.Equal(day(6)))
	assert.Equal(t, 15.0, value2)
	assert.Equal(t, redraws+1, host.Redraws)

	assert.Equal(t, plot.StatusNone, line.PointerClick(image.Pt(44, 20), day(7), 16))
	assert.Equal(t, []string{"AAPL-1"}, host.Saved)
	assert.False(t, line.SaveRequired())
	assert.Equal(t, "", host.LastMessage())
	assert.Equal(t, 16.0, line.High())
	assert.Equal(t, 10.0, line.Low())

	ctx, canvas := drawContext()
	line.Draw(ctx)
	assert.Equal(t, [][]image.Point{{{20, 50}, {44, 20}}}, points(canvas.Filter(plottest.OpLine)))
	assert.Zero(t, canvas.Count(plottest.OpFillRect))

	// select on the line, then grab the end handle
	assert.Equal(t, plot.StatusSelected, line.PointerClick(image.Pt(32, 35), day(5), 13))
	canvas.Reset()
	line.Draw(ctx)
	assert.Equal(t, 2, canvas.Count(plottest.OpFillRect))

	assert.Equal(t, plot.StatusMoving, line.PointerClick(image.Pt(44, 20), day(7), 16))
	line.PointerMoving(image.Pt(50, 10), day(8), 18)
	date2, value2 = line.End()
	assert.True(t, date2.Equal(day(8)))
	assert.Equal(t, 18.0, value2)
	assert.Equal(t, "2024-01-09 18.00", host.LastMessage())

	assert.Equal(t, plot.StatusSelected, line.PointerClick(image.Pt(50, 10), day(8), 18))
	assert.Equal(t, plot.StatusNone, line.PointerClick(image.Pt(300, 90), day(9), 2))
}

func TestTrendLine_Extend(t *testing.T) {
	s := core.NewSetting()
	s.SetTime("Date", day(3))
	s.SetFloat("Value", 10)
	s.SetTime("Date2", day(7))
	s.SetFloat("Value2", 16)
	s.SetBool("Extend", true)

	line := NewTrendLine()
	require.NoError(t, line.SetSettings(s))

	ctx, canvas := drawContext()
	line.Draw(ctx)
	assert.Equal(t, [][]image.Point{{{20, 50}, {600, -675}}}, points(canvas.Filter(plottest.OpLine)))
}

func TestTrendLine_OffScreenAnchor(t *testing.T) {
	s := core.NewSetting()
	s.SetTime("Date", day(3))
	s.SetTime("Date2", day(40))

	line := NewTrendLine()
	require.NoError(t, line.SetSettings(s))

	ctx, canvas := drawContext()
	line.Draw(ctx)
	assert.Empty(t, canvas.Ops)
	assert.Equal(t, plot.StatusNone, line.PointerClick(image.Pt(20, 50), day(3), 10))
}

func TestKeyEvent_Delete(t *testing.T) {
	host := &plottest.Host{}
	text := NewText()
	text.Attach(host)

	s := core.NewSetting()
	s.Set("Name", "AAPL-3")
	s.SetTime("Date", day(2))
	s.SetFloat("Value", 10)
	require.NoError(t, text.SetSettings(s))

	text.KeyEvent(plot.KeyDelete)
	assert.Empty(t, host.Deleted)

	ctx, _ := drawContext()
	text.Draw(ctx)
	require.Equal(t, plot.StatusSelected, text.PointerClick(image.Pt(16, 45), day(2), 11))

	text.KeyEvent(plot.KeyLeft)
	assert.Empty(t, host.Deleted)
	text.KeyEvent(plot.KeyDelete)
	assert.Equal(t, []string{"AAPL-3"}, host.Deleted)
}

func TestArrow(t *testing.T) {
	buy := NewBuyArrow()
	buy.NewObject("Bars", "AAPL-1")
	assert.Equal(t, plot.StatusNone, buy.PointerClick(image.Pt(14, 50), day(2), 10))
	buy.Identifier = "AAPL"

	ctx, canvas := drawContext()
	buy.Draw(ctx)

	polygons := canvas.Filter(plottest.OpPolygon)
	require.Len(t, polygons, 1)
	assert.True(t, polygons[0].Filled)
	assert.Equal(t, plot.MustColor("green"), polygons[0].Color)
	assert.Equal(t, image.Pt(14, 50), polygons[0].Points[0])
	assert.Equal(t, image.Pt(19, 55), polygons[0].Points[1])

	s := buy.Settings()
	assert.Equal(t, "AAPL", s.Get("Identifier"))
	assert.Equal(t, "10", s.Get("Price"))
	assert.Equal(t, 10.0, buy.High())

	sell := NewSellArrow()
	r := core.NewSetting()
	r.SetTime("Date", day(2))
	r.SetFloat("Price", 12)
	require.NoError(t, sell.SetSettings(r))
	assert.Equal(t, 12.0, sell.Low())

	canvas.Reset()
	sell.Draw(ctx)
	polygons = canvas.Filter(plottest.OpPolygon)
	require.Len(t, polygons, 1)
	assert.Equal(t, image.Pt(19, 35), polygons[0].Points[1])
}

func TestArrow_PlacingDrawsNothing(t *testing.T) {
	buy := NewBuyArrow()
	buy.NewObject("Bars", "AAPL-1")

	ctx, canvas := drawContext()
	buy.Draw(ctx)
	assert.Empty(t, canvas.Ops)
}

func TestHorizontalLine(t *testing.T) {
	line := NewHorizontalLine()
	line.NewObject("Bars", "AAPL-2")
	line.PointerClick(image.Pt(100, 50), day(5), 10)
	line.Label = "Support"

	ctx, canvas := drawContext()
	line.Draw(ctx)

	assert.Equal(t, [][]image.Point{{{0, 50}, {600, 50}}}, points(canvas.Filter(plottest.OpLine)))
	assert.Equal(t, []string{"Support 10.00"}, canvas.Texts())
	assert.Equal(t, 10.0, line.High())

	// anywhere on the line selects it
	assert.Equal(t, plot.StatusSelected, line.PointerClick(image.Pt(400, 52), day(5), 9.5))

	assert.Equal(t, plot.StatusMoving, line.PointerClick(image.Pt(3, 50), day(0), 10))
	line.PointerMoving(image.Pt(3, 40), day(0), 12)
	assert.Equal(t, 12.0, line.High())
}

func TestVerticalLine(t *testing.T) {
	line := NewVerticalLine()
	line.NewObject("Bars", "AAPL-3")
	line.PointerClick(image.Pt(26, 50), day(4), 10)

	assert.True(t, math.IsInf(line.High(), -1))
	assert.True(t, math.IsInf(line.Low(), 1))

	ctx, canvas := drawContext()
	line.Draw(ctx)
	assert.Equal(t, [][]image.Point{{{26, 0}, {26, 100}}}, points(canvas.Filter(plottest.OpLine)))

	assert.Equal(t, plot.StatusSelected, line.PointerClick(image.Pt(27, 10), day(4), 18))
	assert.Equal(t, plot.StatusMoving, line.PointerClick(image.Pt(26, 50), day(4), 10))
	line.PointerMoving(image.Pt(44, 50), day(7), 10)
	assert.True(t, line.Date().Equal(day(7)))
}

func TestText(t *testing.T) {
	text := NewText()
	text.NewObject("Bars", "AAPL-4")
	text.PointerClick(image.Pt(14, 50), day(2), 10)
	text.Label = "earnings"

	ctx, canvas := drawContext()
	text.Draw(ctx)

	ops := canvas.Filter(plottest.OpText)
	require.Len(t, ops, 1)
	assert.Equal(t, "earnings", ops[0].Text)
	assert.Equal(t, image.Pt(14, 50), ops[0].Points[0])

	assert.Equal(t, plot.StatusSelected, text.PointerClick(image.Pt(30, 45), day(4), 11))
	assert.Equal(t, plot.StatusNone, text.PointerClick(image.Pt(30, 90), day(4), 2))

	text.Font = plot.Font{Family: "Courier", Size: 9}
	s := text.Settings()
	assert.Equal(t, "Courier", s.Get("FontFamily"))
	assert.Equal(t, "earnings", s.Get("Label"))
}

func TestFiboLine(t *testing.T) {
	fibo := NewFiboLine()
	fibo.NewObject("Bars", "AAPL-5")
	assert.Equal(t, plot.StatusSelected, fibo.PointerClick(image.Pt(14, 0), day(2), 20))
	assert.Equal(t, plot.StatusNone, fibo.PointerClick(image.Pt(44, 50), day(7), 10))

	values := fibo.LevelValues()
	require.Len(t, values, 7)
	assert.InDelta(t, 20, values[0], 1e-9)
	assert.InDelta(t, 17.64, values[1], 1e-9)
	assert.InDelta(t, 15, values[3], 1e-9)
	assert.InDelta(t, 10, values[6], 1e-9)

	ctx, canvas := drawContext()
	fibo.Draw(ctx)
	assert.Equal(t, 7, canvas.Count(plottest.OpLine))
	assert.Contains(t, canvas.Texts(), "50.0% 15.00")
	assert.Equal(t, [][]image.Point{{{14, 25}, {44, 25}}}, points(canvas.Filter(plottest.OpLine)[3:4]))

	s := fibo.Settings()
	assert.Equal(t, "0.236,0.382,0.5,0.618,0.786", s.Get("Levels"))

	s.Set("Levels", "0.5, 0.618")
	require.NoError(t, fibo.SetSettings(s))
	assert.Equal(t, []float64{0.5, 0.618}, fibo.Levels)

	s.Set("Levels", "0.5,half")
	assert.Error(t, fibo.SetSettings(s))
}

func TestCycle(t *testing.T) {
	host := &plottest.Host{}
	cycle := NewCycle()
	cycle.Attach(host)
	cycle.NewObject("Bars", "AAPL-6")
	cycle.PointerClick(image.Pt(14, 80), day(2), 4)
	cycle.Interval = 2

	assert.True(t, math.IsInf(cycle.High(), -1))

	ctx, canvas := drawContext()
	cycle.Draw(ctx)

	lines := canvas.Filter(plottest.OpLine)
	require.NotEmpty(t, lines)
	assert.Zero(t, len(lines)%arcSegments)
	// arcs are phased on the anchor: one starts at x = 2
	assert.Contains(t, points(lines), []image.Point{{2, 100}, {2, 99}})

	assert.Equal(t, plot.StatusSelected, cycle.PointerClick(image.Pt(2, 100), day(0), 0))
	assert.Equal(t, plot.StatusMoving, cycle.PointerClick(image.Pt(26, 94), day(4), 1))

	cycle.PointerMoving(image.Pt(44, 94), day(7), 1)
	assert.Equal(t, 5, cycle.Interval)

	// dragging before the anchor keeps the interval
	cycle.PointerMoving(image.Pt(2, 94), day(0), 1)
	assert.Equal(t, 5, cycle.Interval)
	assert.True(t, cycle.SaveRequired())

	// releasing the drag persists the change once
	assert.Equal(t, plot.StatusSelected, cycle.PointerClick(image.Pt(2, 94), day(0), 1))
	assert.Equal(t, []string{"AAPL-6", "AAPL-6"}, host.Saved)
	assert.False(t, cycle.SaveRequired())
}
