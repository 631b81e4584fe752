package plottest

import (
	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// Listener records every plot notification
type Listener struct {
	Status     []string
	Infos      []*core.Setting
	Presented  []plot.Canvas
	Draws      int
	Saved      []*core.Setting
	Deleted    []string
	DeletedAll int
	Cursors    []plot.Cursor
	Edited     []plot.ChartObject
	Keys       []plot.Key
}

func (l *Listener) StatusMessage(text string)      { l.Status = append(l.Status, text) }
func (l *Listener) InfoMessage(info *core.Setting) { l.Infos = append(l.Infos, info) }
func (l *Listener) Present(c plot.Canvas)          { l.Presented = append(l.Presented, c) }
func (l *Listener) Drawn()                         { l.Draws++ }
func (l *Listener) SaveObject(s *core.Setting)     { l.Saved = append(l.Saved, s) }
func (l *Listener) DeleteObject(name string)       { l.Deleted = append(l.Deleted, name) }
func (l *Listener) DeleteAllObjects()              { l.DeletedAll++ }
func (l *Listener) CursorChanged(c plot.Cursor)    { l.Cursors = append(l.Cursors, c) }
func (l *Listener) EditObject(co plot.ChartObject) { l.Edited = append(l.Edited, co) }
func (l *Listener) KeyPressed(key plot.Key)        { l.Keys = append(l.Keys, key) }

// LastStatus returns the most recent status line or ""
func (l *Listener) LastStatus() string {
	if len(l.Status) == 0 {
		return ""
	}
	return l.Status[len(l.Status)-1]
}

// LastInfo returns the most recent info panel record or nil
func (l *Listener) LastInfo() *core.Setting {
	if len(l.Infos) == 0 {
		return nil
	}
	return l.Infos[len(l.Infos)-1]
}
