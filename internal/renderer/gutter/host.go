package gutter

import (
	"reflect"

	"github.com/dshills/markgutter/internal/renderer/core"
)

// Position is a document offset that follows edits.
// Implementations may also provide Release() to free tracking resources;
// the gutter calls it when it drops an icon.
type Position interface {
	Offset() int
}

type releaser interface {
	Release()
}

// Icon is something the gutter can draw. Icons are compared by identity,
// so implementations should be pointer types. A value whose dynamic type
// holds a slice, map or func never equals anything, itself included.
type Icon interface {
	Width() int
	Height() int
	// Paint draws the icon with its top-left corner at (x, y) in
	// document coordinates.
	Paint(s Surface, x, y int)
}

// Surface is the minimal drawing target. Icons type-assert richer
// capabilities on it, such as cell or image access.
type Surface interface {
	Fill(r core.Rect, c core.Color)
}

// Host is the text view the gutter is attached to. Coordinates are in
// document pixels: y = 0 is the top of the first line, not the top of the
// screen.
type Host interface {
	LineCount() int
	LineHeight() int
	LineWrap() bool
	Insets() core.Insets

	// VisibleRect returns the visible part of the document, or false when
	// the view is not showing.
	VisibleRect() (core.Rect, bool)

	// Height is the full height of the view.
	Height() int

	DocumentLength() int
	LineStartOffset(line int) (int, error)

	// LineEndOffset returns the exclusive end of line. For every line but
	// the last this is the start of the next line.
	LineEndOffset(line int) (int, error)

	LineOfOffset(offset int) (int, error)

	// PointToOffset returns the offset nearest to (x, y), or -1.
	PointToOffset(x, y int) int

	CreatePosition(offset int) (Position, error)

	// LineBounds returns the box of a logical line from the layout,
	// spanning all of its wrapped rows.
	LineBounds(line int) (core.Rect, bool)

	// Repaint asks for a redraw at some later point.
	Repaint()
}

// BookmarkListener can veto bookmark changes made by ToggleBookmark.
type BookmarkListener interface {
	BeforeAddBookmark(line int) bool
	BeforeRemoveBookmark(line int) bool
}

// BookmarkListenerFuncs adapts plain functions to a BookmarkListener.
// A nil function approves.
type BookmarkListenerFuncs struct {
	Add    func(line int) bool
	Remove func(line int) bool
}

// BeforeAddBookmark implements BookmarkListener.
func (f BookmarkListenerFuncs) BeforeAddBookmark(line int) bool {
	return f.Add == nil || f.Add(line)
}

// BeforeRemoveBookmark implements BookmarkListener.
func (f BookmarkListenerFuncs) BeforeRemoveBookmark(line int) bool {
	return f.Remove == nil || f.Remove(line)
}

// sameIcon reports whether a and b are the same icon without panicking on
// values that == cannot compare.
func sameIcon(a, b Icon) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !comparableIcon(a) || !comparableIcon(b) {
		return false
	}
	return a == b
}

func comparableIcon(icon Icon) bool {
	return reflect.ValueOf(icon).Comparable()
}
