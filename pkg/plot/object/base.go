// Package object implements the chart objects a plot can carry: trade
// arrows, trend and fibonacci lines, horizontal and vertical lines, text
// labels and cycle markers.
package object

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

const (
	// handleSize is the side of a grab handle square in pixels
	handleSize = 6
	// hitTolerance is how close a click must land to a line to select it
	hitTolerance = 4
)

// Objects anchored only in time report an empty range so the scale
// resolver ignores them
var (
	noHigh = math.Inf(-1)
	noLow  = math.Inf(1)
)

// base carries what every chart object shares: identity, the primary
// anchor, the click state and the hit areas of the last draw.
type base struct {
	host      plot.ObjectHost
	name      string
	kind      string
	indicator string
	date      time.Time
	value     float64
	color     color.RGBA
	status    plot.Status
	saveFlag  bool

	// placing is set while the object waits for its defining clicks
	placing bool
	step    int
	// handle is the grab handle being dragged
	handle int

	areas    []image.Rectangle
	segments [][2]image.Point
	handles  []image.Rectangle
}

func newBase(kind string, c color.RGBA) base {
	return base{kind: kind, color: c, host: nopHost{}}
}

func (b *base) Name() string    { return b.name }
func (b *base) Type() string    { return b.kind }
func (b *base) Date() time.Time { return b.date }

func (b *base) SaveRequired() bool { return b.saveFlag }

// unplaced reports an object still waiting for its first click. It has no
// value yet and must not take part in scaling.
func (b *base) unplaced() bool { return b.placing && b.step == 0 }

// Attach sets the host receiving redraw and lifecycle requests
func (b *base) Attach(host plot.ObjectHost) {
	if host == nil {
		host = nopHost{}
	}
	b.host = host
}

// NewObject starts the placement workflow
func (b *base) NewObject(indicator, name string) {
	b.indicator = indicator
	b.name = name
	b.placing = true
	b.step = 0
	b.status = plot.StatusNone
	b.host.Message(fmt.Sprintf("Select point to place %s...", b.kind))
}

// KeyEvent deletes the object on Delete while it is selected
func (b *base) KeyEvent(key plot.Key) {
	if b.status != plot.StatusSelected {
		return
	}
	if key == plot.KeyDelete {
		b.host.ObjectDeleted(b.name)
	}
}

// click runs the shared pointer protocol. place is called for each
// placement click with its step number and reports whether the object is
// complete.
func (b *base) click(p image.Point, place func(step int) bool) plot.Status {
	if b.placing {
		if !place(b.step) {
			b.step++
			b.host.Redraw()
			return plot.StatusSelected
		}

		b.placing = false
		b.status = plot.StatusNone
		b.host.Message("")
		b.save()
		b.host.Redraw()
		return plot.StatusNone
	}

	switch b.status {
	case plot.StatusNone:
		if b.hit(p) {
			b.status = plot.StatusSelected
			b.host.Redraw()
		}

	case plot.StatusSelected:
		if h := b.grab(p); h >= 0 {
			b.handle = h
			b.status = plot.StatusMoving
			return b.status
		}
		if !b.hit(p) {
			b.status = plot.StatusNone
			b.host.Redraw()
		}

	case plot.StatusMoving:
		b.status = plot.StatusSelected
		if b.saveFlag {
			b.save()
		}
		b.host.Redraw()
	}

	return b.status
}

// moved finishes a drag step: the object is dirty and the chart repaints
func (b *base) moved(t time.Time, v float64) {
	b.saveFlag = true
	b.host.Redraw()
	b.host.Message(fmt.Sprintf("%s %s", t.Format(time.DateOnly), plot.Strip(v)))
}

// save asks the host to persist the object and marks it clean
func (b *base) save() {
	b.host.SaveObject(b.name)
	b.saveFlag = false
}

// resetAreas drops the hit areas of the previous draw
func (b *base) resetAreas() {
	b.areas = b.areas[:0]
	b.segments = b.segments[:0]
	b.handles = b.handles[:0]
}

func (b *base) addSegment(p1, p2 image.Point) {
	b.segments = append(b.segments, [2]image.Point{p1, p2})
}

// addHandle registers a grab handle centred on p and draws it when the
// object is selected
func (b *base) addHandle(ctx plot.DrawContext, p image.Point) {
	r := image.Rect(p.X-handleSize/2, p.Y-handleSize/2, p.X+handleSize/2, p.Y+handleSize/2)
	b.handles = append(b.handles, r)
	if b.status != plot.StatusNone {
		ctx.Canvas.FillRect(r, b.color)
	}
}

func (b *base) hit(p image.Point) bool {
	for _, r := range b.areas {
		if p.In(r) {
			return true
		}
	}
	for _, s := range b.segments {
		if distance(p, s[0], s[1]) <= hitTolerance {
			return true
		}
	}
	return false
}

// grab returns the index of the handle under p or -1
func (b *base) grab(p image.Point) int {
	for i, r := range b.handles {
		if p.In(r.Inset(-1)) {
			return i
		}
	}
	return -1
}

// settings returns the record fields shared by every object
func (b *base) settings() *core.Setting {
	s := core.NewSetting()
	s.Set("Name", b.name)
	s.Set("Type", b.kind)
	s.Set("Plot", b.indicator)
	s.Set("Color", plot.FormatColor(b.color))
	if !b.date.IsZero() {
		s.SetTime("Date", b.date)
	}
	s.SetFloat("Value", b.value)
	return s
}

// apply reads the shared record fields. Missing fields keep their value.
func (b *base) apply(s *core.Setting) error {
	if kind, ok := s.Lookup("Type"); ok && kind != b.kind {
		return fmt.Errorf("%w: %q is not a %s", ErrUnknownType, kind, b.kind)
	}

	if name, ok := s.Lookup("Name"); ok {
		b.name = name
	}
	if ind, ok := s.Lookup("Plot"); ok {
		b.indicator = ind
	}
	if raw, ok := s.Lookup("Color"); ok {
		c, err := plot.ParseColor(raw)
		if err != nil {
			return err
		}
		b.color = c
	}
	if t, ok := s.Time("Date"); ok {
		b.date = t
	}
	b.value = s.Float("Value", b.value)
	return nil
}

// distance returns the pixel distance from p to the segment a-b
func distance(p, a, b image.Point) float64 {
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	px, py := float64(p.X-a.X), float64(p.Y-a.Y)

	t := 0.0
	if l := dx*dx + dy*dy; l > 0 {
		t = min(max((px*dx+py*dy)/l, 0), 1)
	}

	ex, ey := px-t*dx, py-t*dy
	return math.Hypot(ex, ey)
}

type nopHost struct{}

func (nopHost) Redraw()              {}
func (nopHost) Refresh()             {}
func (nopHost) Message(string)       {}
func (nopHost) ObjectDeleted(string) {}
func (nopHost) SaveObject(string)    {}
