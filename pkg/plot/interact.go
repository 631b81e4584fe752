package plot

import "image"

// offSurface is the click position that makes a selected object let go
var offSurface = image.Pt(-1, -1)

// HandleEvent routes a pointer or key event and returns the resulting
// interaction state
func (p *Plot) HandleEvent(ev Event) MouseStatus {
	switch ev.Kind {
	case PointerPress:
		p.pointerPress(ev)
	case PointerMove:
		p.pointerMove(ev)
	case PointerDoubleClick:
		p.doubleClick()
	case KeyPress:
		p.keyPress(ev.Key)
	}
	return p.status
}

func (p *Plot) pointerPress(ev Event) {
	if !p.ready() {
		p.log.Debug("pointer press ignored: no bars or indicator")
		return
	}

	if !p.style.DrawMode {
		if ev.Button == LeftButton {
			if p.style.Crosshairs {
				p.CrossHair(ev.X, ev.Y, true)
			}
			p.updateStatusBar(ev.X, ev.Y)
		}
		return
	}

	if ev.Button != LeftButton {
		return
	}

	pt := image.Pt(ev.X, ev.Y)
	p.setPointer(ev.X, ev.Y)

	switch p.status {
	case MouseNone:
		for _, co := range p.objects.all() {
			if co.PointerClick(pt, p.pointerTime, p.pointerValue) != StatusNone {
				p.selected = co
				p.status = MouseSelected
				return
			}
		}

	case MouseSelected:
		switch p.selected.PointerClick(pt, p.pointerTime, p.pointerValue) {
		case StatusMoving:
			p.status = MouseMoving
		case StatusNone:
			p.status = MouseNone
			p.selected = nil
		}

	case MouseMoving:
		p.selected.PointerClick(pt, p.pointerTime, p.pointerValue)
		p.status = MouseSelected

	case MouseClickWait:
		if p.selected.PointerClick(pt, p.pointerTime, p.pointerValue) == StatusNone {
			p.status = MouseNone
			p.selected = nil
			p.listener.StatusMessage("")
			p.listener.CursorChanged(ArrowCursor)
		}
	}
}

func (p *Plot) pointerMove(ev Event) {
	if !p.ready() || ev.Y <= 0 {
		return
	}

	if p.style.DrawMode && p.selected != nil &&
		(p.status == MouseMoving || p.status == MouseClickWait) {
		p.setPointer(ev.X, ev.Y)
		p.selected.PointerMoving(image.Pt(ev.X, ev.Y), p.pointerTime, p.pointerValue)
		return
	}

	if p.style.InfoPanel {
		p.listener.InfoMessage(p.Info(ev.X))
	}
}

func (p *Plot) doubleClick() {
	if !p.ready() || p.status != MouseSelected || p.selected == nil {
		return
	}
	p.listener.EditObject(p.selected)
}

func (p *Plot) keyPress(key Key) {
	if p.status == MouseSelected && p.selected != nil {
		p.selected.KeyEvent(key)
		return
	}

	if key.navigation() {
		p.listener.KeyPressed(key)
	}
}

// setPointer converts a pixel position to the chart coordinates handed to
// chart objects
func (p *Plot) setPointer(x, y int) {
	i := p.viewport().XToIndex(x, p.bars.Count())
	p.pointerTime = p.bars.Bar(i).Time
	p.pointerValue = p.scaler.ConvertToVal(y)
}
