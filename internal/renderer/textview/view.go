// Package textview is the text widget the gutter is attached to. It maps
// between buffer offsets and document coordinates, with optional soft
// wrapping.
//
// Document coordinates put y = 0 at the top of the first visual row.
// Each visual row is LineHeight units high; in a terminal that is one
// cell.
package textview

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/markgutter/internal/engine/buffer"
	"github.com/dshills/markgutter/internal/renderer/core"
	"github.com/dshills/markgutter/internal/renderer/gutter"
	"github.com/dshills/markgutter/internal/renderer/layout"
	"github.com/dshills/markgutter/internal/renderer/viewport"
)

// ErrInvalidLine is returned for lines outside the buffer.
var ErrInvalidLine = errors.New("line out of range")

// Config holds view configuration.
type Config struct {
	LineHeight int
	Insets     core.Insets
	LineWrap   bool
	WrapAtWord bool
	TabWidth   int
	// ScrollMargin is kept above and below the cursor when revealing it.
	ScrollMargin int
}

// DefaultConfig returns a configuration for a terminal view.
func DefaultConfig() Config {
	return Config{
		LineHeight:   1,
		WrapAtWord:   true,
		TabWidth:     4,
		ScrollMargin: 2,
	}
}

// View is a soft-wrapping text view over a buffer. It implements
// gutter.Host. It is not safe for concurrent use.
type View struct {
	buf      *buffer.Buffer
	config   Config
	engine   *layout.Engine
	rowCache *layout.RowCache
	vp       *viewport.Viewport
	showing  bool

	// firstRow[i] is the visual row index where line i starts; the extra
	// final entry is the total row count. nil when stale.
	firstRow []int

	onRepaint   func()
	onChange    []func()
	unsubscribe func()
}

// New creates a view over buf. width and height are the size of the text
// area in document units.
func New(buf *buffer.Buffer, config Config, width, height int) *View {
	if config.LineHeight < 0 {
		config.LineHeight = 0
	}
	v := &View{
		buf:     buf,
		config:  config,
		engine:  layout.NewEngine(config.TabWidth),
		vp:      viewport.NewViewport(width, height),
		showing: true,
	}
	v.rowCache = layout.NewRowCache(v.engine, 4096)
	v.vp.SetMargins(config.ScrollMargin*config.LineHeight, config.ScrollMargin*config.LineHeight)
	v.applyWrap()
	v.unsubscribe = buf.OnChange(v.bufferChanged)
	return v
}

// Close detaches the view from its buffer.
func (v *View) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

// Buffer returns the underlying buffer.
func (v *View) Buffer() *buffer.Buffer { return v.buf }

// Viewport returns the scroll state.
func (v *View) Viewport() *viewport.Viewport { return v.vp }

// Config returns the current configuration.
func (v *View) Config() Config { return v.config }

// OnRepaint sets the function called when the view needs a redraw.
func (v *View) OnRepaint(fn func()) { v.onRepaint = fn }

// OnDocumentChange registers fn to run after every buffer edit, once the
// view's own layout is up to date.
func (v *View) OnDocumentChange(fn func()) {
	v.onChange = append(v.onChange, fn)
}

// SetShowing marks the view as on screen or not.
func (v *View) SetShowing(showing bool) { v.showing = showing }

// SetConfig replaces the configuration and relayouts the view.
func (v *View) SetConfig(config Config) {
	if config.LineHeight < 0 {
		config.LineHeight = 0
	}
	v.config = config
	v.engine.SetTabWidth(config.TabWidth)
	v.vp.SetMargins(config.ScrollMargin*config.LineHeight, config.ScrollMargin*config.LineHeight)
	v.applyWrap()
	v.Repaint()
}

// SetLineWrap turns soft wrapping on or off.
func (v *View) SetLineWrap(wrap bool) {
	if v.config.LineWrap == wrap {
		return
	}
	v.config.LineWrap = wrap
	v.applyWrap()
	v.Repaint()
}

// Resize changes the text area size.
func (v *View) Resize(width, height int) {
	v.vp.Resize(width, height)
	v.applyWrap()
}

func (v *View) applyWrap() {
	width := 0
	if v.config.LineWrap {
		width = max(v.vp.Width()-v.config.Insets.Left-v.config.Insets.Right, 1)
	}
	v.engine.SetWrap(width, v.config.WrapAtWord)
	v.rowCache.InvalidateAll()
	v.firstRow = nil
	v.vp.SetContentHeight(v.Height())
}

func (v *View) bufferChanged(buffer.Change) {
	v.firstRow = nil
	v.vp.SetContentHeight(v.Height())
	for _, fn := range v.onChange {
		fn()
	}
	v.Repaint()
}

// rows returns the visual row index table, rebuilding it when stale.
func (v *View) rows() []int {
	if v.firstRow != nil {
		return v.firstRow
	}
	n := int(v.buf.LineCount())
	first := make([]int, n+1)
	for i := 0; i < n; i++ {
		count := 1
		if v.config.LineWrap {
			text, _ := v.buf.LineText(uint32(i))
			count = v.rowCache.RowCount(uint32(i), text)
		}
		first[i+1] = first[i] + count
	}
	v.firstRow = first
	return first
}

// LineCount implements gutter.Host.
func (v *View) LineCount() int { return int(v.buf.LineCount()) }

// LineHeight implements gutter.Host.
func (v *View) LineHeight() int { return v.config.LineHeight }

// LineWrap implements gutter.Host.
func (v *View) LineWrap() bool { return v.config.LineWrap }

// Insets implements gutter.Host.
func (v *View) Insets() core.Insets { return v.config.Insets }

// VisibleRect implements gutter.Host.
func (v *View) VisibleRect() (core.Rect, bool) {
	r := v.vp.VisibleRect()
	return r, v.showing && !r.IsEmpty()
}

// Height implements gutter.Host. It is the full height of the document,
// or of the viewport if that is taller.
func (v *View) Height() int {
	rows := v.rows()
	h := v.config.Insets.Top + rows[len(rows)-1]*v.config.LineHeight + v.config.Insets.Bottom
	return max(h, v.vp.Height())
}

// DocumentLength implements gutter.Host.
func (v *View) DocumentLength() int { return int(v.buf.Len()) }

// LineStartOffset implements gutter.Host.
func (v *View) LineStartOffset(line int) (int, error) {
	if line < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLine, line)
	}
	off, err := v.buf.LineStartOffset(uint32(line))
	return int(off), err
}

// LineEndOffset implements gutter.Host. The end of every line but the
// last is the start of the next one.
func (v *View) LineEndOffset(line int) (int, error) {
	n := v.LineCount()
	if line < 0 || line >= n {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLine, line)
	}
	if line == n-1 {
		return v.DocumentLength(), nil
	}
	return v.LineStartOffset(line + 1)
}

// LineOfOffset implements gutter.Host.
func (v *View) LineOfOffset(offset int) (int, error) {
	line, err := v.buf.LineOfOffset(buffer.ByteOffset(offset))
	return int(line), err
}

// CreatePosition implements gutter.Host.
func (v *View) CreatePosition(offset int) (gutter.Position, error) {
	p, err := v.buf.CreatePosition(buffer.ByteOffset(offset))
	if err != nil {
		return nil, err
	}
	return position{p}, nil
}

// LineBounds implements gutter.Host.
func (v *View) LineBounds(line int) (core.Rect, bool) {
	rows := v.rows()
	if line < 0 || line >= len(rows)-1 {
		return core.Rect{}, false
	}
	lh := v.config.LineHeight
	return core.NewRect(
		v.config.Insets.Left,
		v.config.Insets.Top+rows[line]*lh,
		v.vp.Width()-v.config.Insets.Left-v.config.Insets.Right,
		(rows[line+1]-rows[line])*lh,
	), true
}

// Repaint implements gutter.Host.
func (v *View) Repaint() {
	if v.onRepaint != nil {
		v.onRepaint()
	}
}

// PointToOffset implements gutter.Host. Points above or below the text
// snap to the first or last row.
func (v *View) PointToOffset(x, y int) int {
	lh := v.config.LineHeight
	if lh <= 0 {
		return -1
	}
	rows := v.rows()
	total := rows[len(rows)-1]
	row := (y - v.config.Insets.Top) / lh
	if y < v.config.Insets.Top {
		row = 0
	}
	row = min(row, total-1)

	line := sort.Search(len(rows)-1, func(i int) bool { return rows[i+1] > row })
	text, err := v.buf.LineText(uint32(line))
	if err != nil {
		return -1
	}
	start, err := v.buf.LineStartOffset(uint32(line))
	if err != nil {
		return -1
	}
	layoutRows := v.engine.Rows(text)
	r := min(row-rows[line], len(layoutRows)-1)
	return int(start) + v.engine.OffsetAtColumn(text, layoutRows[r], x-v.config.Insets.Left)
}

// OffsetToPoint returns the document point of offset, the inverse of
// PointToOffset.
func (v *View) OffsetToPoint(offset int) (x, y int, err error) {
	p, err := v.buf.OffsetToPoint(buffer.ByteOffset(offset))
	if err != nil {
		return 0, 0, err
	}
	text, err := v.buf.LineText(p.Line)
	if err != nil {
		return 0, 0, err
	}
	col := int(p.Column)
	layoutRows := v.engine.Rows(text)
	r := 0
	for r < len(layoutRows)-1 && col >= layoutRows[r].End {
		r++
	}
	rows := v.rows()
	x = v.config.Insets.Left + v.engine.ColumnOfOffset(text, layoutRows[r], col)
	y = v.config.Insets.Top + (rows[p.Line]+r)*v.config.LineHeight
	return x, y, nil
}

// VisualRow is one row of text as laid out on screen.
type VisualRow struct {
	Line  int
	Y     int    // Document y of the row
	Text  string // Row content, tabs not expanded
	First bool   // First row of its line
}

// VisibleRows returns the rows that intersect the viewport.
func (v *View) VisibleRows() []VisualRow {
	lh := v.config.LineHeight
	if lh <= 0 {
		return nil
	}
	vis := v.vp.VisibleRect()
	rows := v.rows()
	total := rows[len(rows)-1]

	firstRow := max((vis.Y-v.config.Insets.Top)/lh, 0)
	line := sort.Search(len(rows)-1, func(i int) bool { return rows[i+1] > firstRow })

	var out []VisualRow
	for ; line < len(rows)-1; line++ {
		text, err := v.buf.LineText(uint32(line))
		if err != nil {
			break
		}
		for i, r := range v.engine.Rows(text) {
			row := rows[line] + i
			if row >= total {
				break
			}
			y := v.config.Insets.Top + row*lh
			if y+lh <= vis.Y {
				continue
			}
			if y >= vis.Bottom() {
				return out
			}
			out = append(out, VisualRow{Line: line, Y: y, Text: text[r.Start:r.End], First: i == 0})
		}
	}
	return out
}

// RevealOffset scrolls so that offset is visible.
func (v *View) RevealOffset(offset int) {
	_, y, err := v.OffsetToPoint(offset)
	if err != nil {
		return
	}
	if v.vp.ScrollToReveal(y, v.config.LineHeight) {
		v.Repaint()
	}
}

// ExpandTabs expands tabs in a row of text for display.
func (v *View) ExpandTabs(text string) []rune {
	return layout.ExpandTabs(text, v.engine.TabWidth())
}

// position adapts buffer.Position to gutter.Position.
type position struct {
	p *buffer.Position
}

func (p position) Offset() int { return int(p.p.Offset()) }
func (p position) Release()    { p.p.Release() }

var _ gutter.Host = (*View)(nil)
