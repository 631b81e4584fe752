package plot

import "github.com/raykavin/chartplot/pkg/core"

// EventKind identifies a pointer or keyboard event
type EventKind int

const (
	PointerPress EventKind = iota
	PointerMove
	PointerDoubleClick
	KeyPress
)

// Button identifies a pointer button
type Button int

const (
	NoButton Button = iota
	LeftButton
	RightButton
	MiddleButton
)

// Key identifies the keys the plot routes
type Key int

const (
	KeyOther Key = iota
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPlus
	KeyMinus
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyDelete
	KeyEscape
)

// navigation reports whether the key scrolls or zooms the chart
func (k Key) navigation() bool {
	switch k {
	case KeyLeft, KeyRight, KeyHome, KeyEnd, KeyPlus, KeyMinus,
		KeyPageUp, KeyPageDown, KeyUp, KeyDown:
		return true
	}
	return false
}

// Event is a host event translated into the plot's input shape
type Event struct {
	Kind   EventKind
	Button Button
	X, Y   int
	Key    Key
}

// Cursor is the pointer shape the plot asks the host to show
type Cursor int

const (
	ArrowCursor Cursor = iota
	CrossCursor
	PointingHandCursor
)

// Listener receives everything the plot produces. Embed NopListener to
// implement only part of it.
type Listener interface {
	StatusMessage(text string)
	InfoMessage(info *core.Setting)
	// Present hands the finished off-screen surface to the host for display
	Present(surface Canvas)
	Drawn()
	SaveObject(settings *core.Setting)
	DeleteObject(name string)
	DeleteAllObjects()
	CursorChanged(c Cursor)
	EditObject(co ChartObject)
	KeyPressed(key Key)
}

// NopListener ignores every notification
type NopListener struct{}

func (NopListener) StatusMessage(string)      {}
func (NopListener) InfoMessage(*core.Setting) {}
func (NopListener) Present(Canvas)            {}
func (NopListener) Drawn()                    {}
func (NopListener) SaveObject(*core.Setting)  {}
func (NopListener) DeleteObject(string)       {}
func (NopListener) DeleteAllObjects()         {}
func (NopListener) CursorChanged(Cursor)      {}
func (NopListener) EditObject(ChartObject)    {}
func (NopListener) KeyPressed(Key)            {}
