package app

import (
	"time"

	"github.com/dshills/markgutter/internal/input/mouse"
	"github.com/dshills/markgutter/internal/renderer/backend"
)

// pointerTracker turns terminal mouse reports, which only carry the set of
// buttons currently held, into press, release and move events.
type pointerTracker struct {
	held mouse.Button
}

func (t *pointerTracker) translate(ev backend.Event, now time.Time) mouse.Event {
	me := mouse.Event{
		Position:  mouse.Position{X: ev.MouseX, Y: ev.MouseY},
		Modifiers: modifiers(ev.Mod),
		Timestamp: now,
	}

	b := button(ev.MouseButton)
	switch {
	case b.IsScroll():
		me.Button, me.Action = b, mouse.ActionPress
	case b != mouse.ButtonNone && b != t.held:
		me.Button, me.Action = b, mouse.ActionPress
		t.held = b
	case b != mouse.ButtonNone:
		me.Button, me.Action = b, mouse.ActionMove
	case t.held != mouse.ButtonNone:
		me.Button, me.Action = t.held, mouse.ActionRelease
		t.held = mouse.ButtonNone
	default:
		me.Action = mouse.ActionMove
	}
	return me
}

func button(b backend.MouseButton) mouse.Button {
	switch b {
	case backend.MouseLeft:
		return mouse.ButtonLeft
	case backend.MouseMiddle:
		return mouse.ButtonMiddle
	case backend.MouseRight:
		return mouse.ButtonRight
	case backend.MouseWheelUp:
		return mouse.ButtonScrollUp
	case backend.MouseWheelDown:
		return mouse.ButtonScrollDown
	default:
		return mouse.ButtonNone
	}
}

func modifiers(m backend.ModMask) mouse.Modifier {
	var out mouse.Modifier
	if m.Has(backend.ModShift) {
		out |= mouse.ModShift
	}
	if m.Has(backend.ModCtrl) {
		out |= mouse.ModCtrl
	}
	if m.Has(backend.ModAlt) {
		out |= mouse.ModAlt
	}
	return out
}

func (a *Application) handleMouse(ev backend.Event) {
	me := a.pointer.translate(ev, time.Now())
	if n := mouse.ScrollLines(me, mouse.DefaultConfig()); n != 0 {
		a.view.Viewport().ScrollBy(n * a.view.LineHeight())
		a.dirty = true
		return
	}
	if a.mouse.Dispatch(me) && me.Action != mouse.ActionMove {
		a.dirty = true
	}
}

// gutterPoint maps a screen position in the gutter to document space.
func (a *Application) gutterPoint(p mouse.Position) mouse.Position {
	return mouse.Position{X: p.X, Y: p.Y + a.view.Viewport().Top()}
}

// textPoint maps a screen position in the text area to document space.
func (a *Application) textPoint(p mouse.Position) mouse.Position {
	return mouse.Position{X: p.X - a.gutterWidth, Y: p.Y + a.view.Viewport().Top()}
}

// textArea places the cursor on click.
type textArea struct {
	app *Application
}

func (t *textArea) MousePressed(ev mouse.Event) {
	if ev.Button != mouse.ButtonLeft {
		return
	}
	if off := t.app.view.PointToOffset(ev.Position.X, ev.Position.Y); off >= 0 {
		t.app.cursor = off
	}
}

func (t *textArea) MouseReleased(mouse.Event) {}
func (t *textArea) MouseEntered(mouse.Event)  {}
func (t *textArea) MouseExited(mouse.Event)   {}
