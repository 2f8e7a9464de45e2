// Package viewport tracks which vertical slice of a document is visible.
// Positions are in document units: the y of a visual row is its row index
// times the line height.
package viewport

import "github.com/dshills/markgutter/internal/renderer/core"

// Viewport represents the visible portion of the document.
type Viewport struct {
	top    int
	width  int
	height int

	// Content height; scrolling stops when its end is at the bottom.
	contentHeight int

	// Scroll margins (keep the revealed span this far from edges)
	marginTop    int
	marginBottom int
}

// NewViewport creates a viewport with the given size.
// Negative sizes are clamped to 0.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:  max(width, 0),
		height: max(height, 0),
	}
}

// Top returns the document y shown at the top edge.
func (v *Viewport) Top() int { return v.top }

// Width returns the viewport width.
func (v *Viewport) Width() int { return v.width }

// Height returns the viewport height.
func (v *Viewport) Height() int { return v.height }

// Resize changes the viewport size.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 0)
	v.height = max(height, 0)
	v.top = v.clamp(v.top)
}

// SetContentHeight sets the height of the scrolled document.
func (v *Viewport) SetContentHeight(h int) {
	v.contentHeight = max(h, 0)
	v.top = v.clamp(v.top)
}

// SetMargins sets the scroll margins used by ScrollToReveal.
func (v *Viewport) SetMargins(top, bottom int) {
	v.marginTop = max(top, 0)
	v.marginBottom = max(bottom, 0)
}

// VisibleRect returns the visible part of the document.
func (v *Viewport) VisibleRect() core.Rect {
	return core.NewRect(0, v.top, v.width, v.height)
}

// ScrollTo puts document y at the top edge.
func (v *Viewport) ScrollTo(y int) {
	v.top = v.clamp(y)
}

// ScrollBy scrolls by dy document units.
func (v *Viewport) ScrollBy(dy int) {
	v.top = v.clamp(v.top + dy)
}

// PageUp scrolls up by one viewport height.
func (v *Viewport) PageUp() { v.ScrollBy(-v.height) }

// PageDown scrolls down by one viewport height.
func (v *Viewport) PageDown() { v.ScrollBy(v.height) }

// ScrollToReveal scrolls minimally so that [y, y+h) is visible with the
// configured margins. It returns true if the viewport moved.
func (v *Viewport) ScrollToReveal(y, h int) bool {
	old := v.top
	switch {
	case y-v.marginTop < v.top:
		v.top = v.clamp(y - v.marginTop)
	case y+h+v.marginBottom > v.top+v.height:
		v.top = v.clamp(y + h + v.marginBottom - v.height)
	}
	return v.top != old
}

func (v *Viewport) clamp(top int) int {
	maxTop := v.contentHeight - v.height
	if top > maxTop {
		top = maxTop
	}
	return max(top, 0)
}
