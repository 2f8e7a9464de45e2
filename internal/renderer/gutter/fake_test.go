package gutter

import (
	"errors"
	"strings"

	"github.com/dshills/markgutter/internal/renderer/core"
)

// fakeHost is an in-memory Host over a string. Every line occupies
// rows[line] rows (default 1) of lineHeight pixels.
type fakeHost struct {
	text       string
	lineHeight int
	wrap       bool
	insets     core.Insets
	visible    core.Rect
	hidden     bool
	rows       map[int]int
	positions  []*fakePos
	repaints   int
}

type fakePos struct {
	off      int
	released bool
}

func (p *fakePos) Offset() int { return p.off }
func (p *fakePos) Release()    { p.released = true }

func newFakeHost(lines int, lineHeight int) *fakeHost {
	parts := make([]string, lines)
	for i := range parts {
		parts[i] = "line"
	}
	return &fakeHost{
		text:       strings.Join(parts, "\n"),
		lineHeight: lineHeight,
		visible:    core.NewRect(0, 0, 20, 100),
		rows:       make(map[int]int),
	}
}

func (h *fakeHost) lineStarts() []int {
	starts := []int{0}
	for i := 0; i < len(h.text); i++ {
		if h.text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (h *fakeHost) LineCount() int      { return len(h.lineStarts()) }
func (h *fakeHost) LineHeight() int     { return h.lineHeight }
func (h *fakeHost) LineWrap() bool      { return h.wrap }
func (h *fakeHost) Insets() core.Insets { return h.insets }
func (h *fakeHost) Height() int         { return h.LineCount() * h.lineHeight }
func (h *fakeHost) DocumentLength() int { return len(h.text) }
func (h *fakeHost) Repaint()            { h.repaints++ }
func (h *fakeHost) VisibleRect() (core.Rect, bool) {
	return h.visible, !h.hidden
}

func (h *fakeHost) LineStartOffset(line int) (int, error) {
	starts := h.lineStarts()
	if line < 0 || line >= len(starts) {
		return 0, errors.New("bad line")
	}
	return starts[line], nil
}

func (h *fakeHost) LineEndOffset(line int) (int, error) {
	starts := h.lineStarts()
	if line < 0 || line >= len(starts) {
		return 0, errors.New("bad line")
	}
	if line == len(starts)-1 {
		return len(h.text), nil
	}
	return starts[line+1], nil
}

func (h *fakeHost) LineOfOffset(off int) (int, error) {
	if off < 0 || off > len(h.text) {
		return 0, errors.New("bad offset")
	}
	starts := h.lineStarts()
	line := 0
	for i, s := range starts {
		if s <= off {
			line = i
		}
	}
	return line, nil
}

func (h *fakeHost) rowsOf(line int) int {
	if r, ok := h.rows[line]; ok {
		return r
	}
	return 1
}

func (h *fakeHost) LineBounds(line int) (core.Rect, bool) {
	if line < 0 || line >= h.LineCount() {
		return core.Rect{}, false
	}
	y := 0
	for l := 0; l < line; l++ {
		y += h.rowsOf(l) * h.lineHeight
	}
	return core.NewRect(0, y, 80, h.rowsOf(line)*h.lineHeight), true
}

func (h *fakeHost) PointToOffset(_, y int) int {
	if h.lineHeight <= 0 {
		return -1
	}
	n := h.LineCount()
	line := n - 1
	for l := 0; l < n; l++ {
		b, _ := h.LineBounds(l)
		if y < b.Bottom() {
			line = l
			break
		}
	}
	off, _ := h.LineStartOffset(line)
	return off
}

func (h *fakeHost) CreatePosition(off int) (Position, error) {
	p := &fakePos{off: off}
	h.positions = append(h.positions, p)
	return p, nil
}

// insert edits the text, moving positions at or after at.
func (h *fakeHost) insert(at int, s string) {
	h.text = h.text[:at] + s + h.text[at:]
	for _, p := range h.positions {
		if p.off >= at {
			p.off += len(s)
		}
	}
}

type paintCall struct {
	icon string
	x, y int
}

type recordingSurface struct {
	fills  []core.Rect
	colors []core.Color
	paints []paintCall
}

func (s *recordingSurface) Fill(r core.Rect, c core.Color) {
	s.fills = append(s.fills, r)
	s.colors = append(s.colors, c)
}

type testIcon struct {
	name string
	w, h int
}

func (i *testIcon) Width() int  { return i.w }
func (i *testIcon) Height() int { return i.h }
func (i *testIcon) Paint(s Surface, x, y int) {
	if rs, ok := s.(*recordingSurface); ok {
		rs.paints = append(rs.paints, paintCall{icon: i.name, x: x, y: y})
	}
}

func newIcon(name string) *testIcon {
	return &testIcon{name: name, w: 8, h: 7}
}
