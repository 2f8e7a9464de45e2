package gutter

import (
	"github.com/dshills/markgutter/internal/input/mouse"
)

// MousePressed toggles the bookmark on the clicked line. The event
// position must be in document coordinates. Failures are logged and
// otherwise ignored.
func (g *Gutter) MousePressed(ev mouse.Event) {
	if !g.canBookmark() || g.host == nil {
		return
	}
	off := g.host.PointToOffset(0, ev.Position.Y)
	if off < 0 {
		return
	}
	line, err := g.host.LineOfOffset(off)
	if err != nil {
		g.logger.Warn("gutter click at y=%d: %v", ev.Position.Y, err)
		return
	}
	if _, err := g.ToggleBookmark(line); err != nil {
		g.logger.Warn("toggle bookmark on line %d: %v", line, err)
	}
}

// MouseReleased does nothing.
func (g *Gutter) MouseReleased(mouse.Event) {}

// MouseEntered does nothing.
func (g *Gutter) MouseEntered(mouse.Event) {}

// MouseExited does nothing.
func (g *Gutter) MouseExited(mouse.Event) {}

var _ mouse.Listener = (*Gutter)(nil)
