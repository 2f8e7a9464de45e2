package textview

import (
	"testing"

	"github.com/dshills/markgutter/internal/engine/buffer"
	"github.com/dshills/markgutter/internal/renderer/core"
	"github.com/dshills/markgutter/internal/renderer/gutter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newView(t *testing.T, text string, cfg Config, w, h int) *View {
	t.Helper()
	v := New(buffer.NewBufferFromString(text), cfg, w, h)
	t.Cleanup(v.Close)
	return v
}

func TestLineOffsets(t *testing.T) {
	v := newView(t, "ab\ncd\nef", DefaultConfig(), 20, 10)

	assert.Equal(t, 3, v.LineCount())
	assert.Equal(t, 8, v.DocumentLength())

	start, err := v.LineStartOffset(1)
	require.NoError(t, err)
	assert.Equal(t, 3, start)

	end, err := v.LineEndOffset(1)
	require.NoError(t, err)
	assert.Equal(t, 6, end, "end is the start of the next line")

	end, err = v.LineEndOffset(2)
	require.NoError(t, err)
	assert.Equal(t, 8, end, "last line ends at the document length")

	_, err = v.LineEndOffset(3)
	assert.ErrorIs(t, err, ErrInvalidLine)
	_, err = v.LineStartOffset(-1)
	assert.ErrorIs(t, err, ErrInvalidLine)
}

func TestLineBoundsUnwrapped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineHeight = 5
	cfg.Insets = core.Insets{Top: 2}
	v := newView(t, "a\nb\nc", cfg, 40, 100)

	r, ok := v.LineBounds(1)
	require.True(t, ok)
	assert.Equal(t, core.NewRect(0, 7, 40, 5), r)

	_, ok = v.LineBounds(3)
	assert.False(t, ok)
	assert.Equal(t, 100, v.Height(), "viewport taller than content")
}

func TestLineBoundsWrapped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineWrap = true
	cfg.WrapAtWord = false
	v := newView(t, "short\n0123456789abcdefghij\nend", cfg, 10, 3)

	r, ok := v.LineBounds(1)
	require.True(t, ok)
	assert.Equal(t, 1, r.Y)
	assert.Equal(t, 2, r.H, "twenty cells in a width of ten wrap onto two rows")

	r, ok = v.LineBounds(2)
	require.True(t, ok)
	assert.Equal(t, 3, r.Y)
	assert.Equal(t, 4, v.Height())
}

func TestPointToOffset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineWrap = true
	cfg.WrapAtWord = false
	v := newView(t, "short\n0123456789abcdefghij\nend", cfg, 10, 10)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"origin", 0, 0, 0},
		{"inside first line", 3, 0, 3},
		{"past end of row", 50, 0, 5},
		{"second line first row", 2, 1, 8},
		{"second line wrapped row", 2, 2, 18},
		{"below the text", 0, 99, 27},
		{"above the text", 0, -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.PointToOffset(tt.x, tt.y))
		})
	}
}

func TestPointToOffsetZeroLineHeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineHeight = 0
	v := newView(t, "abc", cfg, 10, 10)
	assert.Equal(t, -1, v.PointToOffset(0, 0))
}

func TestOffsetToPointRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineWrap = true
	cfg.WrapAtWord = false
	v := newView(t, "short\n0123456789abcdefghij\nend", cfg, 10, 10)

	for _, off := range []int{0, 3, 6, 12, 18, 25} {
		x, y, err := v.OffsetToPoint(off)
		require.NoError(t, err)
		assert.Equal(t, off, v.PointToOffset(x, y), "offset %d at (%d,%d)", off, x, y)
	}
}

func TestCreatePositionFollowsEdits(t *testing.T) {
	v := newView(t, "one\ntwo\n", DefaultConfig(), 10, 10)

	p, err := v.CreatePosition(4)
	require.NoError(t, err)

	_, err = v.Buffer().Insert(0, "zero\n")
	require.NoError(t, err)
	assert.Equal(t, 9, p.Offset())

	r, ok := p.(interface{ Release() })
	require.True(t, ok, "positions can be released")
	r.Release()

	_, err = v.CreatePosition(999)
	assert.Error(t, err)
}

func TestDocumentChangeHooks(t *testing.T) {
	v := newView(t, "a\nb", DefaultConfig(), 10, 10)

	var order []string
	v.OnDocumentChange(func() {
		order = append(order, "hook:"+string(rune('0'+v.LineCount())))
	})
	v.OnRepaint(func() { order = append(order, "repaint") })

	_, err := v.Buffer().Insert(0, "x\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"hook:3", "repaint"}, order)

	v.Close()
	_, err = v.Buffer().Insert(0, "y")
	require.NoError(t, err)
	assert.Len(t, order, 2, "no callbacks after Close")
}

func TestVisibleRect(t *testing.T) {
	v := newView(t, "a\nb\nc\nd\ne\nf", DefaultConfig(), 10, 3)
	v.Viewport().ScrollTo(2)

	r, ok := v.VisibleRect()
	require.True(t, ok)
	assert.Equal(t, core.NewRect(0, 2, 10, 3), r)

	v.SetShowing(false)
	_, ok = v.VisibleRect()
	assert.False(t, ok)
}

func TestVisibleRows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineWrap = true
	cfg.WrapAtWord = false
	v := newView(t, "short\n0123456789abcdefghij\nend", cfg, 10, 2)
	v.Viewport().ScrollTo(1)

	rows := v.VisibleRows()
	require.Len(t, rows, 2)
	assert.Equal(t, VisualRow{Line: 1, Y: 1, Text: "0123456789", First: true}, rows[0])
	assert.Equal(t, VisualRow{Line: 1, Y: 2, Text: "abcdefghij", First: false}, rows[1])
}

func TestSetLineWrapRepaints(t *testing.T) {
	v := newView(t, "0123456789abcdefghij", DefaultConfig(), 10, 10)
	repaints := 0
	v.OnRepaint(func() { repaints++ })

	v.SetLineWrap(true)
	assert.True(t, v.LineWrap())
	assert.Equal(t, 1, repaints)

	r, ok := v.LineBounds(0)
	require.True(t, ok)
	assert.Equal(t, 2, r.H)

	v.SetLineWrap(true)
	assert.Equal(t, 1, repaints, "no change, no repaint")
}

func TestRevealOffset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScrollMargin = 0
	v := newView(t, "a\nb\nc\nd\ne\nf\ng\nh", cfg, 10, 3)

	v.RevealOffset(12) // line 6
	assert.Equal(t, 4, v.Viewport().Top())
}

func TestGutterOnView(t *testing.T) {
	v := newView(t, "a\nb\nc", DefaultConfig(), 10, 10)
	cfg := gutter.DefaultConfig()
	cfg.BookmarkingEnabled = true
	g := gutter.New(v, cfg, gutter.WithBookmarkIcon(&stubIcon{}))
	v.OnDocumentChange(g.DocumentChanged)

	added, err := g.ToggleBookmark(2)
	require.NoError(t, err)
	require.True(t, added)

	_, err = v.Buffer().Insert(0, "new\n")
	require.NoError(t, err)

	marks := g.Bookmarks()
	require.Len(t, marks, 1)
	line, err := v.LineOfOffset(marks[0].Offset())
	require.NoError(t, err)
	assert.Equal(t, 3, line, "bookmark moved down with its line")
}

type stubIcon struct{}

func (*stubIcon) Width() int                     { return 1 }
func (*stubIcon) Height() int                    { return 1 }
func (*stubIcon) Paint(gutter.Surface, int, int) {}

func TestSetConfig(t *testing.T) {
	v := newView(t, "a\tb", DefaultConfig(), 20, 5)
	repaints := 0
	v.OnRepaint(func() { repaints++ })

	cfg := v.Config()
	cfg.TabWidth = 8
	cfg.Insets = core.Insets{Top: 1, Left: 2}
	v.SetConfig(cfg)

	assert.Equal(t, 1, repaints)
	assert.Equal(t, []rune("a       b"), v.ExpandTabs("a\tb"))
	x, y, err := v.OffsetToPoint(2)
	require.NoError(t, err)
	assert.Equal(t, 10, x, "inset plus tab stop")
	assert.Equal(t, 1, y)
}
