package gutter

import (
	"github.com/dshills/markgutter/internal/renderer/core"
)

// Paint draws the gutter background and the visible icons on s.
// Nothing is drawn when the gutter has no host or the host is not
// showing.
func (g *Gutter) Paint(s Surface) {
	if g.host == nil || s == nil {
		return
	}
	visible, ok := g.host.VisibleRect()
	if !ok || visible.IsEmpty() {
		return
	}

	width := g.PreferredSize().W
	s.Fill(core.NewRect(0, visible.Y, width, visible.H), g.config.Background)

	if len(g.icons) == 0 {
		return
	}
	g.ensureOrder()
	if g.host.LineWrap() {
		g.paintWrapped(s, visible)
	} else {
		g.paintFixed(s, visible)
	}
}

// paintFixed walks the registry backwards. lastLine drops below each line
// as it is painted, so earlier icons for the same line are skipped.
func (g *Gutter) paintFixed(s Surface, visible core.Rect) {
	lh := g.host.LineHeight()
	if lh <= 0 {
		return
	}
	topLine := visible.Y / lh
	bottomLine := min(topLine+visible.H/lh, g.host.LineCount())
	y := topLine*lh + g.host.Insets().Top
	docLen := g.host.DocumentLength()

	lastLine := bottomLine
	for i := len(g.icons) - 1; i >= 0; i-- {
		ti := g.icons[i]
		line, ok := g.lineOf(ti, docLen)
		if !ok {
			continue
		}
		if line <= lastLine && line > topLine-1 {
			iy := y + (line-topLine)*lh + (lh-ti.icon.Height())/2
			ti.icon.Paint(s, 0, iy)
			lastLine = line - 1
		} else if line <= topLine-1 {
			break
		}
	}
}

// paintWrapped walks logical lines from the top of the view, advancing by
// each line's wrapped height, and the registry forwards in step.
func (g *Gutter) paintWrapped(s Surface, visible core.Rect) {
	lh := g.host.LineHeight()
	off := g.host.PointToOffset(visible.X, visible.Y)
	if off < 0 {
		return
	}
	topLine, err := g.host.LineOfOffset(off)
	if err != nil {
		return
	}
	bounds, ok := g.host.LineBounds(topLine)
	if !ok {
		return
	}
	y := bounds.Y
	lineCount := g.host.LineCount()
	docLen := g.host.DocumentLength()

	i := 0
	for ; i < len(g.icons); i++ {
		if line, ok := g.lineOf(g.icons[i], docLen); ok && line >= topLine {
			break
		}
	}

	bottom := visible.Bottom()
	for line := topLine; y < bottom && line < lineCount; line++ {
		h := lh
		if b, ok := g.host.LineBounds(line); ok && b.H > 0 {
			h = b.H
		}
		if h <= 0 {
			return
		}

		var icon Icon
		for ; i < len(g.icons); i++ {
			l, ok := g.lineOf(g.icons[i], docLen)
			if !ok {
				continue
			}
			if l > line {
				break
			}
			if l == line {
				icon = g.icons[i].icon
			}
		}
		if icon != nil {
			icon.Paint(s, 0, y+(lh-icon.Height())/2)
		}
		y += h
	}
}

// lineOf returns the line of ti, or false if ti cannot be painted.
func (g *Gutter) lineOf(ti *TrackedIcon, docLen int) (int, bool) {
	if ti.icon == nil {
		return 0, false
	}
	off := ti.Offset()
	if off < 0 || off > docLen {
		return 0, false
	}
	line, err := g.host.LineOfOffset(off)
	if err != nil {
		return 0, false
	}
	return line, true
}
