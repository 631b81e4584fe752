package plot

import (
	"fmt"
	"image"
	"time"

	"github.com/raykavin/chartplot/pkg/core"
)

// Status is the answer of a chart object to a pointer click
type Status int

const (
	// StatusNone means the object is not engaged (or just finished)
	StatusNone Status = iota
	// StatusSelected means the object is selected and stays engaged
	StatusSelected
	// StatusMoving means the object grabbed the pointer for a drag
	StatusMoving
)

func (s Status) String() string {
	switch s {
	case StatusSelected:
		return "Selected"
	case StatusMoving:
		return "Moving"
	default:
		return "None"
	}
}

// DrawContext is everything an object needs to place itself on the surface
type DrawContext struct {
	Canvas   Canvas
	Scaler   Scaler
	Viewport Viewport
	Bars     BarSeries
	Style    Style
}

// XFromDate maps a timestamp to the x position of its bar column
func (d DrawContext) XFromDate(t time.Time) int {
	return d.Viewport.XFromDate(d.Bars, t)
}

// ObjectHost receives the requests a chart object raises while it is edited
type ObjectHost interface {
	// Redraw repaints the whole chart
	Redraw()
	// Refresh presents the current surface without repainting it
	Refresh()
	// Message publishes status line text
	Message(text string)
	// ObjectDeleted removes the named object from the chart
	ObjectDeleted(name string)
	// SaveObject emits a save intent for the named object
	SaveObject(name string)
}

// ChartObject is an annotation anchored to (date, value) coordinates
type ChartObject interface {
	Name() string
	Type() string
	// Date is the primary anchor, used to match objects to the hovered bar
	Date() time.Time
	High() float64
	Low() float64

	Attach(host ObjectHost)
	// NewObject starts the creation workflow; the object awaits clicks
	NewObject(indicator, name string)
	Draw(ctx DrawContext)
	PointerClick(p image.Point, t time.Time, v float64) Status
	PointerMoving(p image.Point, t time.Time, v float64)
	KeyEvent(key Key)

	Settings() *core.Setting
	SetSettings(s *core.Setting) error
	// SaveRequired reports unsaved changes
	SaveRequired() bool
}

// ObjectFactory builds chart objects from a type name or a settings record
type ObjectFactory interface {
	New(kind string) (ChartObject, error)
	Restore(s *core.Setting) (ChartObject, error)
}

// Namer hands out unique chart object names for a symbol
type Namer interface {
	NewChartObjectName(symbol string) (string, error)
}

// CounterNamer is an in-memory Namer producing <symbol>-<n>
type CounterNamer struct {
	next map[string]int
}

// NewChartObjectName implements Namer
func (c *CounterNamer) NewChartObjectName(symbol string) (string, error) {
	if c.next == nil {
		c.next = make(map[string]int)
	}
	c.next[symbol]++
	return fmt.Sprintf("%s-%d", symbol, c.next[symbol]), nil
}
