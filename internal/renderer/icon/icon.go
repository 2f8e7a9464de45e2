// Package icon provides gutter icons: single terminal cells and raster
// images.
package icon

import (
	"image"
	"image/draw"

	"github.com/dshills/markgutter/internal/renderer/core"
	"github.com/dshills/markgutter/internal/renderer/gutter"
)

// CellSetter is a surface that can place a styled character cell.
type CellSetter interface {
	SetCell(x, y int, c core.Cell)
}

// Canvas is a surface backed by an image. Origin is the document point
// drawn at the image's (0, 0).
type Canvas interface {
	Canvas() draw.Image
	Origin() image.Point
}

var (
	_ gutter.Icon = (*Glyph)(nil)
	_ gutter.Icon = (*Image)(nil)
)
