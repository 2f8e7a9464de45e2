package app

import (
	"fmt"
	"strings"

	"github.com/dshills/markgutter/internal/renderer/backend"
	"github.com/dshills/markgutter/internal/renderer/core"
)

var statusStyle = core.DefaultStyle().Reverse()

// render redraws the whole screen.
func (a *Application) render() {
	a.dirty = false
	b := a.backend
	b.Clear()

	top := a.view.Viewport().Top()
	left := a.gutterWidth + a.view.Insets().Left
	right := a.width - a.view.Insets().Right
	for _, row := range a.view.VisibleRows() {
		y := row.Y - top
		x := left
		for _, r := range a.view.ExpandTabs(row.Text) {
			w := core.RuneWidth(r)
			if w == 0 {
				continue
			}
			if x+w > right {
				break
			}
			b.SetCell(x, y, core.Cell{Rune: r, Width: w, Style: core.DefaultStyle()})
			x += w
		}
	}

	surface := backend.NewCellSurface(b, core.NewRect(0, 0, a.gutterWidth, a.textHeight()), top)
	a.gutter.Paint(surface)

	a.drawStatus()

	x, y, err := a.view.OffsetToPoint(a.cursor)
	if err == nil && y >= top && y < top+a.textHeight() {
		b.ShowCursor(a.gutterWidth+x, y-top)
	} else {
		b.HideCursor()
	}
	b.Show()
}

func (a *Application) drawStatus() {
	if a.height < 1 {
		return
	}
	y := a.height - 1
	a.backend.Fill(core.NewRect(0, y, a.width, 1), core.NewStyledCell(' ', statusStyle))

	line, _, _ := a.cursorLine()
	parts := []string{displayName(a.opts.File)}
	if a.modified {
		parts[0] += " [+]"
	}
	parts = append(parts,
		fmt.Sprintf("Ln %d/%d", line+1, a.view.LineCount()),
		fmt.Sprintf("%c %d", a.bookmark.Rune, len(a.gutter.Bookmarks())),
	)
	if a.view.LineWrap() {
		parts = append(parts, "wrap")
	}
	if a.message != "" {
		parts = append(parts, a.message)
	}

	x := 0
	for _, r := range " " + strings.Join(parts, "  ") {
		w := core.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > a.width {
			break
		}
		a.backend.SetCell(x, y, core.Cell{Rune: r, Width: w, Style: statusStyle})
		x += w
	}
}
