package plot

import (
	"fmt"
	"path/filepath"

	"github.com/StudioSol/set"

	"github.com/raykavin/chartplot/pkg/core"
)

// objectList keeps chart objects keyed by name in insertion order
type objectList struct {
	order  *set.LinkedHashSetString
	byName map[string]ChartObject
}

func newObjectList() *objectList {
	return &objectList{
		order:  set.NewLinkedHashSetString(),
		byName: make(map[string]ChartObject),
	}
}

// put inserts or replaces an object. A replaced object keeps its position.
func (l *objectList) put(name string, co ChartObject) {
	if _, ok := l.byName[name]; !ok {
		l.order.Add(name)
	}
	l.byName[name] = co
}

func (l *objectList) get(name string) (ChartObject, bool) {
	co, ok := l.byName[name]
	return co, ok
}

func (l *objectList) remove(name string) bool {
	if _, ok := l.byName[name]; !ok {
		return false
	}
	delete(l.byName, name)
	l.order.Remove(name)
	return true
}

func (l *objectList) clear() {
	l.order = set.NewLinkedHashSetString()
	l.byName = make(map[string]ChartObject)
}

func (l *objectList) len() int {
	return len(l.byName)
}

// all returns the objects in insertion order
func (l *objectList) all() []ChartObject {
	out := make([]ChartObject, 0, len(l.byName))
	for name := range l.order.Iter() {
		out = append(out, l.byName[name])
	}
	return out
}

// objectHost forwards chart object requests to the plot
type objectHost struct {
	plot *Plot
}

func (h objectHost) Redraw()                   { h.plot.Draw() }
func (h objectHost) Refresh()                  { h.plot.Refresh() }
func (h objectHost) Message(text string)       { h.plot.listener.StatusMessage(text) }
func (h objectHost) ObjectDeleted(name string) { h.plot.DeleteChartObject(name) }
func (h objectHost) SaveObject(name string)    { h.plot.SaveChartObject(name) }

// AddChartObject restores a chart object from its settings record
func (p *Plot) AddChartObject(s *core.Setting) error {
	if p.factory == nil {
		return fmt.Errorf("no chart object factory")
	}

	co, err := p.factory.Restore(s)
	if err != nil {
		return fmt.Errorf("failed to restore chart object: %w", err)
	}

	co.Attach(objectHost{p})
	p.objects.put(co.Name(), co)
	return nil
}

// NewChartObject starts the creation of a chart object of the given type.
// The object takes the following pointer clicks until it is placed.
func (p *Plot) NewChartObject(kind string) {
	if p.chartPath == "" {
		p.log.Debug("new chart object ignored: no chart path")
		return
	}
	if p.indicator == nil || p.factory == nil {
		p.log.Debug("new chart object ignored: no indicator or factory")
		return
	}

	co, err := p.factory.New(kind)
	if err != nil {
		p.log.WithError(err).Debugf("new chart object %q ignored", kind)
		return
	}

	name, err := p.namer.NewChartObjectName(filepath.Base(p.chartPath))
	if err != nil {
		p.log.WithError(err).Warn("failed to name chart object")
		return
	}

	co.Attach(objectHost{p})
	p.objects.put(name, co)

	p.selected = co
	p.status = MouseClickWait
	p.listener.CursorChanged(PointingHandCursor)

	co.NewObject(p.indicator.Name, name)
}

// ChartObject returns the named chart object
func (p *Plot) ChartObject(name string) (ChartObject, bool) {
	return p.objects.get(name)
}

// ChartObjects returns the chart objects in insertion order
func (p *Plot) ChartObjects() []ChartObject {
	return p.objects.all()
}

// DeleteChartObject removes a chart object, emits the delete intent and
// redraws. The interaction resets to None.
func (p *Plot) DeleteChartObject(name string) {
	if p.chartPath == "" || p.objects.len() == 0 {
		return
	}

	if !p.objects.remove(name) {
		p.log.Debugf("delete chart object %q ignored: not found", name)
		return
	}
	p.listener.DeleteObject(name)

	p.status = MouseNone
	p.selected = nil
	p.Draw()
}

// DeleteAllChartObjects removes every chart object and redraws
func (p *Plot) DeleteAllChartObjects() {
	if p.chartPath == "" {
		return
	}

	if p.objects.len() == 0 {
		p.listener.StatusMessage("No chart objects to delete.")
		return
	}

	p.listener.DeleteAllObjects()
	p.objects.clear()

	p.status = MouseNone
	p.selected = nil
	p.Draw()
}

// SaveChartObject emits a save intent for the named object
func (p *Plot) SaveChartObject(name string) {
	co, ok := p.objects.get(name)
	if !ok {
		return
	}
	p.listener.SaveObject(co.Settings())
}

// SaveChartObjects emits save intents for every object with unsaved changes
func (p *Plot) SaveChartObjects() {
	if p.chartPath == "" {
		return
	}

	for _, co := range p.objects.all() {
		if co.SaveRequired() {
			p.listener.SaveObject(co.Settings())
		}
	}
}
