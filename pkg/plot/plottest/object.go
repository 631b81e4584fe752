package plottest

import (
	"errors"
	"image"
	"math"
	"time"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// Object is a chart object whose click answers are scripted
type Object struct {
	ObjName string
	Kind    string
	Anchor  time.Time
	Hi, Lo  float64
	// Clicks are returned by PointerClick in order; StatusNone once drained
	Clicks []plot.Status
	Dirty  bool
	// Stored is the record the object was restored from
	Stored *core.Setting

	Host      plot.ObjectHost
	Indicator string
	Clicked   []image.Point
	Moved     []image.Point
	Keys      []plot.Key
	Draws     int
}

func (o *Object) Name() string                    { return o.ObjName }
func (o *Object) Type() string                    { return o.Kind }
func (o *Object) Date() time.Time                 { return o.Anchor }
func (o *Object) High() float64                   { return o.Hi }
func (o *Object) Low() float64                    { return o.Lo }
func (o *Object) Attach(host plot.ObjectHost)     { o.Host = host }
func (o *Object) Draw(plot.DrawContext)           { o.Draws++ }
func (o *Object) KeyEvent(key plot.Key)           { o.Keys = append(o.Keys, key) }
func (o *Object) SaveRequired() bool              { return o.Dirty }
func (o *Object) SetSettings(*core.Setting) error { return nil }

func (o *Object) NewObject(indicator, name string) {
	o.Indicator = indicator
	o.ObjName = name
}

func (o *Object) PointerClick(p image.Point, _ time.Time, _ float64) plot.Status {
	o.Clicked = append(o.Clicked, p)
	if len(o.Clicks) == 0 {
		return plot.StatusNone
	}
	s := o.Clicks[0]
	o.Clicks = o.Clicks[1:]
	return s
}

func (o *Object) PointerMoving(p image.Point, _ time.Time, _ float64) {
	o.Moved = append(o.Moved, p)
}

func (o *Object) Settings() *core.Setting {
	s := core.NewSetting()
	if o.Stored != nil {
		s = o.Stored.Copy()
	}
	s.Set("Name", o.ObjName)
	s.Set("Type", o.Kind)
	s.SetTime("Date", o.Anchor)
	return s
}

// ErrUnknownKind is returned by Factory for the empty type name
var ErrUnknownKind = errors.New("unknown chart object type")

// Factory builds Objects. Every new object gets a copy of Script.
type Factory struct {
	Script []plot.Status
	Made   []*Object
}

func (f *Factory) New(kind string) (plot.ChartObject, error) {
	if kind == "" {
		return nil, ErrUnknownKind
	}
	o := &Object{
		Kind:   kind,
		Hi:     math.Inf(-1),
		Lo:     math.Inf(1),
		Clicks: append([]plot.Status(nil), f.Script...),
	}
	f.Made = append(f.Made, o)
	return o, nil
}

func (f *Factory) Restore(s *core.Setting) (plot.ChartObject, error) {
	co, err := f.New(s.Get("Type"))
	if err != nil {
		return nil, err
	}
	o := co.(*Object)
	o.ObjName = s.Get("Name")
	o.Stored = s.Copy()
	o.Anchor, _ = s.Time("Date")
	o.Hi = s.Float("High", math.Inf(-1))
	o.Lo = s.Float("Low", math.Inf(1))
	return o, nil
}
