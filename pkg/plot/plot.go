package plot

import (
	"fmt"
	"image/color"
	"time"

	"github.com/raykavin/chartplot/pkg/logger"
)

// MouseStatus is the state of the pointer interaction
type MouseStatus int

const (
	// MouseNone means no chart object is engaged
	MouseNone MouseStatus = iota
	// MouseClickWait means a new object awaits its next defining click
	MouseClickWait
	// MouseSelected means an existing object reported itself engaged
	MouseSelected
	// MouseMoving means the selected object is being dragged
	MouseMoving
)

func (m MouseStatus) String() string {
	switch m {
	case MouseClickWait:
		return "ClickWait"
	case MouseSelected:
		return "Selected"
	case MouseMoving:
		return "Moving"
	default:
		return "None"
	}
}

// Plot renders one indicator pane over a bar sequence and routes pointer
// events to its chart objects. It is not safe for concurrent use: every
// method is expected to run on the host's event thread.
type Plot struct {
	log      logger.Logger
	style    Style
	surfaces SurfaceFactory
	buffer   Canvas
	listener Listener
	factory  ObjectFactory
	namer    Namer

	bars       BarSeries
	indicator  *Indicator
	objects    *objectList
	selected   ChartObject
	status     MouseStatus
	scaler     Scaler
	startIndex int
	xGrid      []int
	chartPath  string

	crossHairArmed bool
	crossHairTime  time.Time
	crossHairValue float64

	// pointer position in chart coordinates of the last routed event
	pointerTime  time.Time
	pointerValue float64
}

// Option defines a function type for configuring a Plot instance
type Option func(*Plot)

// WithStyle replaces the default style
func WithStyle(style Style) Option {
	return func(p *Plot) {
		p.style = style
	}
}

// WithListener sets the receiver of status, info, draw and object events
func WithListener(l Listener) Option {
	return func(p *Plot) {
		p.listener = l
	}
}

// WithObjectFactory sets the factory used to create chart objects
func WithObjectFactory(f ObjectFactory) Option {
	return func(p *Plot) {
		p.factory = f
	}
}

// WithNamer sets the collaborator naming new chart objects
func WithNamer(n Namer) Option {
	return func(p *Plot) {
		p.namer = n
	}
}

// WithChartPath sets the chart identifier; its base name is the symbol
func WithChartPath(path string) Option {
	return func(p *Plot) {
		p.chartPath = path
	}
}

// NewPlot creates a plot. No surface exists until the first Resize.
func NewPlot(log logger.Logger, surfaces SurfaceFactory, options ...Option) *Plot {
	p := &Plot{
		log:      log,
		style:    DefaultStyle(),
		surfaces: surfaces,
		listener: NopListener{},
		namer:    &CounterNamer{},
		objects:  newObjectList(),
	}

	for _, option := range options {
		option(p)
	}

	return p
}

// Resize replaces the off-screen surface and redraws
func (p *Plot) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid surface size %dx%d", width, height)
	}

	buffer, err := p.surfaces(width, height)
	if err != nil {
		return fmt.Errorf("failed to create surface: %w", err)
	}

	p.buffer = buffer
	p.Draw()
	return nil
}

// Draw repaints the whole off-screen surface and presents it
func (p *Plot) Draw() {
	if p.buffer == nil {
		return
	}

	p.buffer.Fill(p.style.Background)

	if p.hasBars() && p.indicator != nil {
		vp := p.viewport()
		p.scaler = resolveScaler(scaleInput{
			indicator: p.indicator,
			objects:   p.objects.all(),
			barCount:  p.bars.Count(),
			viewport:  vp,
			style:     p.style,
		})

		p.drawXGrid(vp)
		p.drawYGrid(vp)
		p.drawInfo()

		renderer{
			canvas:   p.buffer,
			scaler:   p.scaler,
			viewport: vp,
			barCount: p.bars.Count(),
			style:    p.style,
		}.drawLines(p.indicator)

		p.drawObjects(vp)
		p.drawCrossHair(vp)
	}

	p.listener.Present(p.buffer)
	p.listener.Drawn()
}

// Refresh presents the current surface without repainting it
func (p *Plot) Refresh() {
	if p.buffer == nil {
		return
	}
	p.listener.Present(p.buffer)
}

func (p *Plot) drawObjects(vp Viewport) {
	ctx := DrawContext{
		Canvas:   p.buffer,
		Scaler:   p.scaler,
		Viewport: vp,
		Bars:     p.bars,
		Style:    p.style,
	}
	for _, co := range p.objects.all() {
		co.Draw(ctx)
	}
}

func (p *Plot) viewport() Viewport {
	vp := Viewport{
		StartX:     p.style.StartX,
		StartIndex: p.startIndex,
		Pixelspace: p.style.pixelspace(),
	}
	if p.buffer != nil {
		vp.Width = p.buffer.Width()
		vp.Height = p.buffer.Height()
	}
	return vp
}

func (p *Plot) hasBars() bool {
	return p.bars != nil && p.bars.Count() > 0
}

// ready reports whether pointer handling has something to work on
func (p *Plot) ready() bool {
	return p.hasBars() && p.indicator != nil && p.indicator.Enabled && p.buffer != nil
}

// SetData attaches the bar sequence. Empty sequences are ignored.
func (p *Plot) SetData(bars BarSeries) {
	if bars == nil || bars.Count() == 0 {
		return
	}
	p.bars = bars
	p.startIndex = min(p.startIndex, bars.Count()-1)
}

// SetIndicator attaches the indicator drawn by the plot
func (p *Plot) SetIndicator(ind *Indicator) {
	p.indicator = ind
}

// Indicator returns the attached indicator
func (p *Plot) Indicator() *Indicator {
	return p.indicator
}

// DeleteIndicator detaches the indicator
func (p *Plot) DeleteIndicator() {
	p.indicator = nil
}

// Clear emits save intents for modified objects and drops the data,
// indicator, objects and crosshair
func (p *Plot) Clear() {
	p.SaveChartObjects()

	p.indicator = nil
	p.bars = nil
	p.status = MouseNone
	p.selected = nil
	p.crossHairArmed = false
	p.objects.clear()
}

// SetIndex sets the oldest visible bar, clamped to the bar sequence
func (p *Plot) SetIndex(index int) {
	if p.hasBars() {
		index = min(index, p.bars.Count()-1)
	}
	p.startIndex = max(index, 0)
}

// Scroll pans the chart to index and redraws
func (p *Plot) Scroll(index int) {
	p.SetIndex(index)
	p.Draw()
}

// Index returns the oldest visible bar
func (p *Plot) Index() int {
	return p.startIndex
}

// SetPixelspace sets the bar width (zoom); values below the minimum clamp
func (p *Plot) SetPixelspace(d int) {
	p.style.Pixelspace = d
}

// SetMinPixelspace sets the smallest allowed bar width
func (p *Plot) SetMinPixelspace(d int) {
	p.style.MinPixelspace = d
}

// Pixelspace returns the effective bar width
func (p *Plot) Pixelspace() int {
	return p.style.pixelspace()
}

func (p *Plot) SetBackgroundColor(c color.RGBA) { p.style.Background = c }
func (p *Plot) SetBorderColor(c color.RGBA)     { p.style.Border = c }
func (p *Plot) SetGridColor(c color.RGBA)       { p.style.Grid = c }
func (p *Plot) SetPlotFont(f Font)              { p.style.Font = f }
func (p *Plot) SetGridFlag(d bool)              { p.style.GridLines = d }
func (p *Plot) SetScaleToScreen(d bool)         { p.style.ScaleToScreen = d }
func (p *Plot) SetLogScale(d bool)              { p.style.LogScale = d }
func (p *Plot) SetInfoFlag(d bool)              { p.style.InfoPanel = d }

// SetCrosshairs enables or disables the crosshair and disarms it
func (p *Plot) SetCrosshairs(d bool) {
	p.style.Crosshairs = d
	p.crossHairArmed = false
}

// SetDrawMode switches between object editing and crosshair interaction.
// Leaving draw mode deselects the selected object.
func (p *Plot) SetDrawMode(d bool) {
	p.style.DrawMode = d

	if d {
		p.listener.CursorChanged(ArrowCursor)
	} else {
		p.listener.CursorChanged(CrossCursor)
	}

	if !d && p.status == MouseSelected && p.selected != nil {
		p.selected.PointerClick(offSurface, p.pointerTime, p.pointerValue)
		p.status = MouseNone
		p.selected = nil
	}
}

// SetXGrid sets the bar indices of the vertical grid lines
func (p *Plot) SetXGrid(indices []int) {
	p.xGrid = append([]int(nil), indices...)
}

// SetChartPath sets the chart identifier; its base name is the symbol
func (p *Plot) SetChartPath(path string) {
	p.chartPath = path
}

// Style returns a copy of the current style
func (p *Plot) Style() Style {
	return p.style
}

// Scaler returns the scaler of the last draw
func (p *Plot) Scaler() Scaler {
	return p.scaler
}

// Width returns the surface width
func (p *Plot) Width() int {
	if p.buffer == nil {
		return 0
	}
	return p.buffer.Width()
}

// Surface returns the off-screen surface
func (p *Plot) Surface() Canvas {
	return p.buffer
}

// MouseStatus returns the interaction state
func (p *Plot) MouseStatus() MouseStatus {
	return p.status
}

// Selected returns the engaged chart object or nil
func (p *Plot) Selected() ChartObject {
	return p.selected
}
